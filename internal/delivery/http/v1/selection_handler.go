package v1

import (
	"net/http"

	"social-workflow-web/internal/delivery/http/middleware"
	"social-workflow-web/internal/delivery/http/response"
	"social-workflow-web/internal/domain"
	"social-workflow-web/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SelectionHandler struct {
	selectionUC domain.SelectionUsecase
}

type SelectItemRequest struct {
	Item string `json:"item" binding:"required"`
}

type StudioTypeRequest struct {
	Type domain.StudioContentType `json:"type" binding:"required"`
}

func NewSelectionHandler(r *gin.RouterGroup, selectionUC domain.SelectionUsecase) {
	handler := &SelectionHandler{selectionUC: selectionUC}

	selections := r.Group("/selections")
	{
		selections.GET("", handler.Get)
		selections.POST("/nav", handler.SelectNav)
		selections.POST("/navbar", handler.SelectNavbar)
		selections.POST("/studio-type", handler.SelectStudioType)
		selections.PUT("/studio-platforms/:platform", handler.AddStudioPlatform)
		selections.DELETE("/studio-platforms/:platform", handler.RemoveStudioPlatform)
	}
}

// Get godoc
// @Summary      Get UI selections
// @Description  Dashboard nav item, navbar item and content studio choices of this session
// @Tags         selections
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Selections}
// @Router       /selections [get]
func (h *SelectionHandler) Get(c *gin.Context) {
	sel, err := h.selectionUC.GetSelections(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Selections retrieved", sel)
}

// SelectNav godoc
// @Summary      Select a dashboard sidebar item
// @Tags         selections
// @Accept       json
// @Produce      json
// @Param        request  body      SelectItemRequest  true  "Item" Enums(dashboard, create, calendar, analytics, assistant)
// @Success      200      {object}  response.Response{data=domain.Selections}
// @Failure      400      {object}  response.Response
// @Router       /selections/nav [post]
func (h *SelectionHandler) SelectNav(c *gin.Context) {
	var req SelectItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	sel, err := h.selectionUC.SelectNav(c.Request.Context(), middleware.SessionID(c), domain.NavItem(req.Item))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Selection updated", sel)
}

// SelectNavbar godoc
// @Summary      Select a navbar item
// @Tags         selections
// @Accept       json
// @Produce      json
// @Param        request  body      SelectItemRequest  true  "Item" Enums(home, create, schedule, results, help)
// @Success      200      {object}  response.Response{data=domain.Selections}
// @Failure      400      {object}  response.Response
// @Router       /selections/navbar [post]
func (h *SelectionHandler) SelectNavbar(c *gin.Context) {
	var req SelectItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	sel, err := h.selectionUC.SelectNavbar(c.Request.Context(), middleware.SessionID(c), domain.NavbarItem(req.Item))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Selection updated", sel)
}

// SelectStudioType godoc
// @Summary      Select a content studio post type
// @Tags         selections
// @Accept       json
// @Produce      json
// @Param        request  body      StudioTypeRequest  true  "Content type"
// @Success      200      {object}  response.Response{data=domain.Selections}
// @Failure      400      {object}  response.Response
// @Router       /selections/studio-type [post]
func (h *SelectionHandler) SelectStudioType(c *gin.Context) {
	var req StudioTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	sel, err := h.selectionUC.SelectStudioContentType(c.Request.Context(), middleware.SessionID(c), req.Type)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Selection updated", sel)
}

// AddStudioPlatform godoc
// @Summary      Select a content studio platform
// @Tags         selections
// @Produce      json
// @Param        platform  path      string  true  "Platform" Enums(facebook, instagram, linkedin)
// @Success      200       {object}  response.Response{data=domain.Selections}
// @Failure      400       {object}  response.Response
// @Router       /selections/studio-platforms/{platform} [put]
func (h *SelectionHandler) AddStudioPlatform(c *gin.Context) {
	h.toggleStudioPlatform(c, true)
}

// RemoveStudioPlatform godoc
// @Summary      Deselect a content studio platform
// @Tags         selections
// @Produce      json
// @Param        platform  path      string  true  "Platform" Enums(facebook, instagram, linkedin)
// @Success      200       {object}  response.Response{data=domain.Selections}
// @Failure      400       {object}  response.Response
// @Router       /selections/studio-platforms/{platform} [delete]
func (h *SelectionHandler) RemoveStudioPlatform(c *gin.Context) {
	h.toggleStudioPlatform(c, false)
}

func (h *SelectionHandler) toggleStudioPlatform(c *gin.Context, included bool) {
	platform := domain.StudioPlatform(c.Param("platform"))

	sel, err := h.selectionUC.ToggleStudioPlatform(c.Request.Context(), middleware.SessionID(c), platform, included)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Selection updated", sel)
}
