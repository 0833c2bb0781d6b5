package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"social-workflow-web/internal/delivery/http/middleware"
	"social-workflow-web/internal/domain"
	"social-workflow-web/pkg/apperror"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}

type Deps struct {
	SignupUC      domain.SignupUsecase
	PostCreatorUC domain.PostCreatorUsecase
	SelectionUC   domain.SelectionUsecase
	// SubmitLimit guards the signup submission route
	SubmitLimit gin.HandlerFunc
}

type Handler struct {
	signupUC      domain.SignupUsecase
	postCreatorUC domain.PostCreatorUsecase
	selectionUC   domain.SelectionUsecase
}

// NewHandler installs the page templates on r and registers the page routes.
// Every POST answers with a 303 back to a page.
func NewHandler(r *gin.Engine, deps Deps) {
	handler := &Handler{
		signupUC:      deps.SignupUC,
		postCreatorUC: deps.PostCreatorUC,
		selectionUC:   deps.SelectionUC,
	}
	submitLimit := deps.SubmitLimit
	if submitLimit == nil {
		submitLimit = func(c *gin.Context) { c.Next() }
	}

	r.SetHTMLTemplate(Templates())

	r.GET("/", handler.Dashboard)
	r.POST("/nav/:item", handler.SelectNav)
	r.POST("/navbar/:item", handler.SelectNavbar)

	r.GET("/signup", handler.SignupPage)
	r.POST("/signup/field", handler.SignupField)
	r.POST("/signup/toggle", handler.SignupToggle)
	r.POST("/signup/submit", submitLimit, handler.SignupSubmit)

	r.GET("/studio", handler.StudioPage)
	r.POST("/studio/platform", handler.StudioPlatform)
	r.POST("/studio/type", handler.StudioType)

	r.GET("/create", handler.CreatePage)
	r.POST("/create/type", handler.CreateType)
	r.POST("/create/next", handler.CreateNext)
	r.POST("/create/back", handler.CreateBack)
	r.POST("/create/draft", handler.CreateDraft)
	r.POST("/create/timing", handler.CreateTiming)
}

// choice is one button, option or checkbox of a page.
type choice struct {
	Value  string
	Label  string
	Active bool
}

type layout struct {
	Title     string
	Path      string
	CSRFToken string
	Navbar    []choice
}

func (h *Handler) layout(c *gin.Context, title string, sel domain.Selections) layout {
	navbar := make([]choice, 0, len(domain.ValidNavbarItems()))
	for _, item := range domain.ValidNavbarItems() {
		navbar = append(navbar, choice{Value: string(item), Label: item.Label(), Active: item == sel.Navbar.Active})
	}
	return layout{
		Title:     title,
		Path:      c.Request.URL.Path,
		CSRFToken: c.GetString(middleware.CSRFContextKey),
		Navbar:    navbar,
	}
}

func (h *Handler) selections(c *gin.Context) (domain.Selections, bool) {
	sel, err := h.selectionUC.GetSelections(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.fail(c, err)
		return domain.Selections{}, false
	}
	return sel, true
}

// fail renders client errors as a page and hands anything else to the error middleware.
func (h *Handler) fail(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
		c.HTML(appErr.Code, "error.html", gin.H{
			"Layout":  h.layout(c, "Something went wrong", domain.Selections{}),
			"Message": appErr.Message,
		})
		return
	}
	c.Error(err)
}

func redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusSeeOther, path)
}

// returnTo picks the page a POST goes back to: a local path from the form or fallback.
func returnTo(c *gin.Context, fallback string) string {
	next := c.PostForm("return_to")
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") && !strings.Contains(next, "\\") {
		return next
	}
	return fallback
}
