package web

import (
	"net/http"

	"social-workflow-web/internal/delivery/http/middleware"
	"social-workflow-web/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreatePage(c *gin.Context) {
	sel, ok := h.selections(c)
	if !ok {
		return
	}
	state, err := h.postCreatorUC.GetPostCreator(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	types := make([]choice, 0, len(domain.ValidPostTypes()))
	for _, t := range domain.ValidPostTypes() {
		types = append(types, choice{Value: string(t), Label: t.Label(), Active: t == state.PostType})
	}
	timings := make([]choice, 0, len(domain.ValidPostTimings()))
	for _, t := range domain.ValidPostTimings() {
		timings = append(timings, choice{Value: string(t), Label: t.Label(), Active: t == state.Timing})
	}

	c.HTML(http.StatusOK, "create.html", gin.H{
		"Layout":  h.layout(c, state.Step.Title(), sel),
		"State":   state,
		"Types":   types,
		"Timings": timings,
	})
}

func (h *Handler) CreateType(c *gin.Context) {
	t := domain.PostType(c.PostForm("type"))
	if _, err := h.postCreatorUC.ChooseType(c.Request.Context(), middleware.SessionID(c), t); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/create")
}

// CreateNext also keeps the text of the step 2 form when it is posted along.
func (h *Handler) CreateNext(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := middleware.SessionID(c)

	if text, ok := c.GetPostForm("draft"); ok {
		if _, err := h.postCreatorUC.UpdateDraft(ctx, sessionID, text); err != nil {
			h.fail(c, err)
			return
		}
	}
	if _, err := h.postCreatorUC.Next(ctx, sessionID); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/create")
}

func (h *Handler) CreateBack(c *gin.Context) {
	if _, err := h.postCreatorUC.Back(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/create")
}

func (h *Handler) CreateDraft(c *gin.Context) {
	if _, err := h.postCreatorUC.UpdateDraft(c.Request.Context(), middleware.SessionID(c), c.PostForm("draft")); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/create")
}

func (h *Handler) CreateTiming(c *gin.Context) {
	t := domain.PostTiming(c.PostForm("timing"))
	if _, err := h.postCreatorUC.ChooseTiming(c.Request.Context(), middleware.SessionID(c), t); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/create")
}
