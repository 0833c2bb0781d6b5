package web

import (
	"net/http"
	"strconv"

	"social-workflow-web/internal/delivery/http/middleware"
	"social-workflow-web/internal/domain"

	"github.com/gin-gonic/gin"
)

// setsField marks a full form post that carries both checkbox groups.
// Browsers omit unchecked boxes, so without it absence means nothing.
const setsField = "sets"

func (h *Handler) SignupPage(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := middleware.SessionID(c)

	sel, ok := h.selections(c)
	if !ok {
		return
	}
	form, err := h.signupUC.GetForm(ctx, sessionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	flash, err := h.signupUC.TakeLastResult(ctx, sessionID)
	if err != nil {
		h.fail(c, err)
		return
	}

	businessTypes := make([]choice, 0, len(domain.ValidBusinessTypes()))
	for _, t := range domain.ValidBusinessTypes() {
		businessTypes = append(businessTypes, choice{Value: string(t), Label: t.Label(), Active: t == form.BusinessType})
	}
	goals := make([]choice, 0, len(domain.ValidGoals()))
	for _, g := range domain.ValidGoals() {
		goals = append(goals, choice{Value: string(g), Label: string(g), Active: form.HasGoal(g)})
	}
	platforms := make([]choice, 0, len(domain.ValidPlatforms()))
	for _, p := range domain.ValidPlatforms() {
		platforms = append(platforms, choice{Value: string(p), Label: string(p), Active: form.HasPlatform(p)})
	}

	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Layout":        h.layout(c, "Get Your Custom Business Growth Guide", sel),
		"Form":          form,
		"BusinessTypes": businessTypes,
		"Goals":         goals,
		"Platforms":     platforms,
		"Flash":         flash,
	})
}

func (h *Handler) SignupField(c *gin.Context) {
	name := domain.FieldName(c.PostForm("name"))
	if _, err := h.signupUC.UpdateField(c.Request.Context(), middleware.SessionID(c), name, c.PostForm("value")); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/signup")
}

func (h *Handler) SignupToggle(c *gin.Context) {
	included, _ := strconv.ParseBool(c.PostForm("included"))
	category := domain.SetCategory(c.PostForm("category"))

	if _, err := h.signupUC.ToggleSetMembership(c.Request.Context(), middleware.SessionID(c), category, c.PostForm("value"), included); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/signup")
}

// SignupSubmit applies the posted form to the draft, then submits the draft.
// The outcome is shown once on the next signup page view.
func (h *Handler) SignupSubmit(c *gin.Context) {
	if err := h.applyForm(c); err != nil {
		h.fail(c, err)
		return
	}
	if _, err := h.signupUC.SubmitSession(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/signup")
}

func (h *Handler) applyForm(c *gin.Context) error {
	ctx := c.Request.Context()
	sessionID := middleware.SessionID(c)

	for _, name := range domain.ValidFieldNames() {
		value, ok := c.GetPostForm(string(name))
		if !ok {
			continue
		}
		if _, err := h.signupUC.UpdateField(ctx, sessionID, name, value); err != nil {
			return err
		}
	}

	if _, ok := c.GetPostForm(setsField); !ok {
		return nil
	}
	checked := func(category domain.SetCategory) map[string]bool {
		set := map[string]bool{}
		for _, v := range c.PostFormArray(string(category)) {
			set[v] = true
		}
		return set
	}

	goals := checked(domain.CategoryMainGoals)
	for _, g := range domain.ValidGoals() {
		if _, err := h.signupUC.ToggleSetMembership(ctx, sessionID, domain.CategoryMainGoals, string(g), goals[string(g)]); err != nil {
			return err
		}
	}
	platforms := checked(domain.CategorySocialPlatforms)
	for _, p := range domain.ValidPlatforms() {
		if _, err := h.signupUC.ToggleSetMembership(ctx, sessionID, domain.CategorySocialPlatforms, string(p), platforms[string(p)]); err != nil {
			return err
		}
	}
	return nil
}
