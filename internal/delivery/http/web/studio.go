package web

import (
	"net/http"
	"strconv"

	"social-workflow-web/internal/delivery/http/middleware"
	"social-workflow-web/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) StudioPage(c *gin.Context) {
	sel, ok := h.selections(c)
	if !ok {
		return
	}

	platforms := make([]choice, 0, len(domain.ValidStudioPlatforms()))
	for _, p := range domain.ValidStudioPlatforms() {
		platforms = append(platforms, choice{Value: string(p), Label: p.Label(), Active: sel.Studio.HasPlatform(p)})
	}
	types := make([]choice, 0, len(domain.ValidStudioContentTypes()))
	for _, t := range domain.ValidStudioContentTypes() {
		types = append(types, choice{Value: string(t), Label: t.Label(), Active: t == sel.Studio.ContentType})
	}

	c.HTML(http.StatusOK, "studio.html", gin.H{
		"Layout":       h.layout(c, "Content Studio", sel),
		"Platforms":    platforms,
		"ContentTypes": types,
	})
}

// StudioPlatform toggles one platform; the button posts the state it switches to.
func (h *Handler) StudioPlatform(c *gin.Context) {
	included, _ := strconv.ParseBool(c.PostForm("included"))
	platform := domain.StudioPlatform(c.PostForm("platform"))

	if _, err := h.selectionUC.ToggleStudioPlatform(c.Request.Context(), middleware.SessionID(c), platform, included); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/studio")
}

func (h *Handler) StudioType(c *gin.Context) {
	t := domain.StudioContentType(c.PostForm("type"))

	if _, err := h.selectionUC.SelectStudioContentType(c.Request.Context(), middleware.SessionID(c), t); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/studio")
}
