package web

import (
	"net/http"

	"social-workflow-web/internal/delivery/http/middleware"
	"social-workflow-web/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Dashboard(c *gin.Context) {
	sel, ok := h.selections(c)
	if !ok {
		return
	}

	nav := make([]choice, 0, len(domain.ValidNavItems()))
	for _, item := range domain.ValidNavItems() {
		nav = append(nav, choice{Value: string(item), Label: item.Label(), Active: item == sel.Dashboard.ActiveNav})
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Layout": h.layout(c, "Dashboard", sel),
		"Nav":    nav,
	})
}

func (h *Handler) SelectNav(c *gin.Context) {
	_, err := h.selectionUC.SelectNav(c.Request.Context(), middleware.SessionID(c), domain.NavItem(c.Param("item")))
	if err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, returnTo(c, "/"))
}

func (h *Handler) SelectNavbar(c *gin.Context) {
	_, err := h.selectionUC.SelectNavbar(c.Request.Context(), middleware.SessionID(c), domain.NavbarItem(c.Param("item")))
	if err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, returnTo(c, "/"))
}
