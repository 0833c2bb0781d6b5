package v1

import (
	"net/http"

	"social-workflow-web/internal/delivery/http/middleware"
	"social-workflow-web/internal/delivery/http/response"
	"social-workflow-web/internal/domain"
	"social-workflow-web/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SignupHandler struct {
	signupUC domain.SignupUsecase
}

// FieldUpdate is the body of a single field edit.
type FieldUpdate struct {
	Value string `json:"value"`
}

// ValidationResult lists the messages that keep a record from being sent.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func NewSignupHandler(r *gin.RouterGroup, signupUC domain.SignupUsecase, submitLimit gin.HandlerFunc) {
	handler := &SignupHandler{signupUC: signupUC}

	signup := r.Group("/signup")
	{
		signup.GET("", handler.GetForm)
		signup.DELETE("", handler.Reset)
		signup.PATCH("/fields/:name", handler.UpdateField)
		signup.PUT("/:category/:value", handler.AddToSet)
		signup.DELETE("/:category/:value", handler.RemoveFromSet)
		signup.POST("/validate", handler.Validate)
		signup.POST("/submit", submitLimit, handler.Submit)
	}
}

// GetForm godoc
// @Summary      Get signup draft
// @Description  Returns the signup form as currently filled in by this session
// @Tags         signup
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SignupRequest}
// @Router       /signup [get]
func (h *SignupHandler) GetForm(c *gin.Context) {
	form, err := h.signupUC.GetForm(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Signup draft retrieved", form)
}

// UpdateField godoc
// @Summary      Update a signup field
// @Description  Replaces one text or single-select field. Values are kept as typed; validation happens on submit.
// @Tags         signup
// @Accept       json
// @Produce      json
// @Param        name     path      string       true  "Field name" Enums(businessName, businessType, email, website, targetAudience, currentChallenges)
// @Param        request  body      FieldUpdate  true  "New value"
// @Success      200      {object}  response.Response{data=domain.SignupRequest}
// @Failure      400      {object}  response.Response
// @Router       /signup/fields/{name} [patch]
func (h *SignupHandler) UpdateField(c *gin.Context) {
	var req FieldUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	form, err := h.signupUC.UpdateField(c.Request.Context(), middleware.SessionID(c), domain.FieldName(c.Param("name")), req.Value)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Field updated", form)
}

// AddToSet godoc
// @Summary      Select a goal or platform
// @Description  Adds a value to mainGoals or socialPlatforms. Selecting an already selected value changes nothing.
// @Tags         signup
// @Produce      json
// @Param        category  path      string  true  "Set" Enums(mainGoals, socialPlatforms)
// @Param        value     path      string  true  "Goal label or platform name"
// @Success      200       {object}  response.Response{data=domain.SignupRequest}
// @Failure      400       {object}  response.Response
// @Router       /signup/{category}/{value} [put]
func (h *SignupHandler) AddToSet(c *gin.Context) {
	h.toggle(c, true)
}

// RemoveFromSet godoc
// @Summary      Deselect a goal or platform
// @Description  Removes a value from mainGoals or socialPlatforms. Removing an absent value changes nothing.
// @Tags         signup
// @Produce      json
// @Param        category  path      string  true  "Set" Enums(mainGoals, socialPlatforms)
// @Param        value     path      string  true  "Goal label or platform name"
// @Success      200       {object}  response.Response{data=domain.SignupRequest}
// @Failure      400       {object}  response.Response
// @Router       /signup/{category}/{value} [delete]
func (h *SignupHandler) RemoveFromSet(c *gin.Context) {
	h.toggle(c, false)
}

func (h *SignupHandler) toggle(c *gin.Context, included bool) {
	form, err := h.signupUC.ToggleSetMembership(
		c.Request.Context(),
		middleware.SessionID(c),
		domain.SetCategory(c.Param("category")),
		c.Param("value"),
		included,
	)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Selection updated", form)
}

// Validate godoc
// @Summary      Validate a signup record
// @Description  Checks a complete record without storing or sending it
// @Tags         signup
// @Accept       json
// @Produce      json
// @Param        request  body      domain.SignupRequest  true  "Signup record"
// @Success      200      {object}  response.Response{data=ValidationResult}
// @Failure      400      {object}  response.Response
// @Router       /signup/validate [post]
func (h *SignupHandler) Validate(c *gin.Context) {
	req := domain.NewSignupRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	msgs := h.signupUC.Validate(req)
	response.Success(c, http.StatusOK, "Validation complete", ValidationResult{
		Valid:  len(msgs) == 0,
		Errors: msgs,
	})
}

// Submit godoc
// @Summary      Submit the signup draft
// @Description  Sends this session's draft to the signup endpoint once. The draft is cleared on success and kept on failure.
// @Tags         signup
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SubmitResult}
// @Failure      409  {object}  response.Response{error=domain.SubmitResult}
// @Failure      422  {object}  response.Response{error=domain.SubmitResult}
// @Failure      429  {object}  response.Response
// @Failure      502  {object}  response.Response{error=domain.SubmitResult}
// @Router       /signup/submit [post]
func (h *SignupHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := middleware.SessionID(c)

	result, err := h.signupUC.SubmitSession(ctx, sessionID)
	if err != nil {
		c.Error(err)
		return
	}
	// The outcome is returned here; do not replay it on the signup page.
	if _, err := h.signupUC.TakeLastResult(ctx, sessionID); err != nil {
		c.Error(err)
		return
	}

	if result.Succeeded() {
		response.Success(c, http.StatusOK, result.Message, result)
		return
	}
	response.Error(c, submitStatusCode(result.Status), result.Message, result)
}

func submitStatusCode(status domain.SubmitStatus) int {
	switch status {
	case domain.SubmitInvalid:
		return http.StatusUnprocessableEntity
	case domain.SubmitInProgress:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// Reset godoc
// @Summary      Discard the signup draft
// @Tags         signup
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /signup [delete]
func (h *SignupHandler) Reset(c *gin.Context) {
	if err := h.signupUC.Reset(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Signup draft discarded", nil)
}
