package v1

import (
	"net/http"

	"social-workflow-web/internal/delivery/http/middleware"
	"social-workflow-web/internal/delivery/http/response"
	"social-workflow-web/internal/domain"
	"social-workflow-web/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PostCreatorHandler struct {
	postCreatorUC domain.PostCreatorUsecase
}

type ChooseTypeRequest struct {
	Type domain.PostType `json:"type" binding:"required"`
}

type DraftRequest struct {
	Text string `json:"text"`
}

type ChooseTimingRequest struct {
	Timing domain.PostTiming `json:"timing" binding:"required"`
}

func NewPostCreatorHandler(r *gin.RouterGroup, postCreatorUC domain.PostCreatorUsecase) {
	handler := &PostCreatorHandler{postCreatorUC: postCreatorUC}

	creator := r.Group("/post-creator")
	{
		creator.GET("", handler.Get)
		creator.POST("/type", handler.ChooseType)
		creator.POST("/next", handler.Next)
		creator.POST("/back", handler.Back)
		creator.POST("/draft", handler.UpdateDraft)
		creator.POST("/timing", handler.ChooseTiming)
	}
}

// Get godoc
// @Summary      Get post creator state
// @Tags         post-creator
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PostCreatorState}
// @Router       /post-creator [get]
func (h *PostCreatorHandler) Get(c *gin.Context) {
	state, err := h.postCreatorUC.GetPostCreator(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post creator retrieved", state)
}

// ChooseType godoc
// @Summary      Choose a post type
// @Description  Only applies on step 1 and moves the wizard to step 2
// @Tags         post-creator
// @Accept       json
// @Produce      json
// @Param        request  body      ChooseTypeRequest  true  "Post type"
// @Success      200      {object}  response.Response{data=domain.PostCreatorState}
// @Failure      400      {object}  response.Response
// @Router       /post-creator/type [post]
func (h *PostCreatorHandler) ChooseType(c *gin.Context) {
	var req ChooseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	state, err := h.postCreatorUC.ChooseType(c.Request.Context(), middleware.SessionID(c), req.Type)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post type chosen", state)
}

// Next godoc
// @Summary      Go to the next step
// @Description  No effect on the last step
// @Tags         post-creator
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PostCreatorState}
// @Router       /post-creator/next [post]
func (h *PostCreatorHandler) Next(c *gin.Context) {
	state, err := h.postCreatorUC.Next(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Step changed", state)
}

// Back godoc
// @Summary      Go to the previous step
// @Description  No effect on the first step
// @Tags         post-creator
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PostCreatorState}
// @Router       /post-creator/back [post]
func (h *PostCreatorHandler) Back(c *gin.Context) {
	state, err := h.postCreatorUC.Back(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Step changed", state)
}

// UpdateDraft godoc
// @Summary      Edit the post text
// @Description  Only applies on step 2
// @Tags         post-creator
// @Accept       json
// @Produce      json
// @Param        request  body      DraftRequest  true  "Post text"
// @Success      200      {object}  response.Response{data=domain.PostCreatorState}
// @Failure      400      {object}  response.Response
// @Router       /post-creator/draft [post]
func (h *PostCreatorHandler) UpdateDraft(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	state, err := h.postCreatorUC.UpdateDraft(c.Request.Context(), middleware.SessionID(c), req.Text)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Draft updated", state)
}

// ChooseTiming godoc
// @Summary      Choose when to post
// @Description  Only applies on step 3
// @Tags         post-creator
// @Accept       json
// @Produce      json
// @Param        request  body      ChooseTimingRequest  true  "Timing"
// @Success      200      {object}  response.Response{data=domain.PostCreatorState}
// @Failure      400      {object}  response.Response
// @Router       /post-creator/timing [post]
func (h *PostCreatorHandler) ChooseTiming(c *gin.Context) {
	var req ChooseTimingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	state, err := h.postCreatorUC.ChooseTiming(c.Request.Context(), middleware.SessionID(c), req.Timing)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Timing chosen", state)
}
