package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"social-workflow-web/internal/domain"
	"social-workflow-web/pkg/apperror"
	"social-workflow-web/pkg/logger"
	"social-workflow-web/pkg/security"
	"social-workflow-web/pkg/signupapi"
	"social-workflow-web/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	msgSucceeded      = "Thanks! Your custom growth guide request has been received."
	msgInvalid        = "Please fix the highlighted fields and submit again."
	msgNetworkFailure = "We couldn't reach the signup service. Check your connection and try again."
	msgMalformed      = "The signup service sent an unexpected reply. Your request may not have been recorded, please try again later."
	msgInProgress     = "Your signup is already being submitted."
)

type signupUsecase struct {
	sessions *SessionStore
	gateway  domain.SignupGateway
	validate *validator.Validate
	inFlight sync.Map
}

func NewSignupUsecase(sessions *SessionStore, gateway domain.SignupGateway, validate *validator.Validate) domain.SignupUsecase {
	return &signupUsecase{
		sessions: sessions,
		gateway:  gateway,
		validate: validate,
	}
}

// NewSignupSubmitter validates and sends records that are not tied to a session.
func NewSignupSubmitter(gateway domain.SignupGateway, validate *validator.Validate) domain.SignupSubmitter {
	return &signupUsecase{gateway: gateway, validate: validate}
}

// ============================================================================
// Stateless validation and submission
// ============================================================================

// Validate returns user-visible messages, or nil when req can be sent.
func (u *signupUsecase) Validate(req domain.SignupRequest) []string {
	if err := u.validate.Struct(req.Normalize()); err != nil {
		return validation.FormatValidationErrors(err)
	}
	return nil
}

// Submit never issues a network call for an invalid record and never retries.
func (u *signupUsecase) Submit(ctx context.Context, req domain.SignupRequest) domain.SubmitResult {
	if msgs := u.Validate(req); len(msgs) > 0 {
		return domain.SubmitResult{
			Status:      domain.SubmitInvalid,
			Message:     msgInvalid,
			FieldErrors: msgs,
		}
	}

	ack, err := u.gateway.Submit(ctx, req)
	if err != nil {
		return classifyGatewayError(err)
	}

	logger.Log.Info("Signup submitted", "status_code", ack.StatusCode, "business_type", req.BusinessType)
	return domain.SubmitResult{
		Status:     domain.SubmitSucceeded,
		Message:    msgSucceeded,
		StatusCode: ack.StatusCode,
		Ack:        ack.Body,
	}
}

func classifyGatewayError(err error) domain.SubmitResult {
	var (
		statusErr    *signupapi.StatusError
		malformedErr *signupapi.MalformedResponseError
	)

	switch {
	case errors.As(err, &statusErr):
		// The body may echo the submitted record, so only its size is logged
		logger.Log.Warn("Signup rejected by endpoint", "status_code", statusErr.StatusCode, "body_bytes", len(statusErr.Body))
		return domain.SubmitResult{
			Status:     domain.SubmitRejected,
			Message:    rejectedMessage(statusErr.StatusCode),
			StatusCode: statusErr.StatusCode,
		}
	case errors.As(err, &malformedErr):
		logger.Log.Warn("Signup endpoint sent malformed response", "status_code", malformedErr.StatusCode, "error", err)
		return domain.SubmitResult{
			Status:     domain.SubmitMalformedResponse,
			Message:    msgMalformed,
			StatusCode: malformedErr.StatusCode,
		}
	default:
		// NetworkError and anything that kept the request from completing
		logger.Log.Warn("Signup request did not complete", "error", err)
		return domain.SubmitResult{
			Status:  domain.SubmitNetworkFailure,
			Message: msgNetworkFailure,
		}
	}
}

func rejectedMessage(code int) string {
	if code >= 400 && code < 500 {
		return fmt.Sprintf("The signup service could not accept your details (status %d). Please review them and try again.", code)
	}
	return fmt.Sprintf("The signup service is having trouble right now (status %d). Please try again later.", code)
}

// ============================================================================
// Session-scoped form state
// ============================================================================

func (u *signupUsecase) GetForm(ctx context.Context, sessionID string) (domain.SignupRequest, error) {
	sess, err := u.sessions.load(ctx, sessionID)
	if err != nil {
		return domain.SignupRequest{}, err
	}
	return sess.Signup, nil
}

func (u *signupUsecase) UpdateField(ctx context.Context, sessionID string, name domain.FieldName, value string) (domain.SignupRequest, error) {
	sess, err := u.sessions.update(ctx, sessionID, func(s *domain.UISession) error {
		next, err := s.Signup.UpdateField(name, value)
		if err != nil {
			return reducerError(err)
		}
		s.Signup = next
		return nil
	})
	if err != nil {
		return domain.SignupRequest{}, err
	}
	return sess.Signup, nil
}

func (u *signupUsecase) ToggleSetMembership(ctx context.Context, sessionID string, category domain.SetCategory, value string, included bool) (domain.SignupRequest, error) {
	sess, err := u.sessions.update(ctx, sessionID, func(s *domain.UISession) error {
		next, err := s.Signup.ToggleSetMembership(category, value, included)
		if err != nil {
			return reducerError(err)
		}
		s.Signup = next
		return nil
	})
	if err != nil {
		return domain.SignupRequest{}, err
	}
	return sess.Signup, nil
}

// SubmitSession sends the session's draft. Only one submission per session is
// in flight at a time; the session lock is not held during the network call.
// A successful submission discards the draft; a failed one keeps it.
func (u *signupUsecase) SubmitSession(ctx context.Context, sessionID string) (domain.SubmitResult, error) {
	if sessionID == "" {
		return domain.SubmitResult{}, apperror.BadRequest("Session is required")
	}
	if _, busy := u.inFlight.LoadOrStore(sessionID, struct{}{}); busy {
		security.DefaultLogger().Log(ctx, security.SecurityEvent{
			Event:        security.EventDuplicateSubmit,
			SubjectType:  "session",
			SubjectValue: security.HashValue(sessionID),
		})
		result := domain.SubmitResult{Status: domain.SubmitInProgress, Message: msgInProgress}
		_, err := u.sessions.update(ctx, sessionID, func(s *domain.UISession) error {
			s.LastResult = &result
			return nil
		})
		return result, err
	}
	defer u.inFlight.Delete(sessionID)

	sess, err := u.sessions.load(ctx, sessionID)
	if err != nil {
		return domain.SubmitResult{}, err
	}

	result := u.Submit(ctx, sess.Signup)
	if result.Status != domain.SubmitInvalid {
		security.DefaultLogger().LogSignupOutcome(ctx, sess.Signup.Email, string(result.Status), result.StatusCode)
	}

	_, err = u.sessions.update(ctx, sessionID, func(s *domain.UISession) error {
		if result.Succeeded() {
			s.Signup = domain.NewSignupRequest()
		}
		s.LastResult = &result
		return nil
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

// TakeLastResult returns the outcome of the last submission once, then clears it.
func (u *signupUsecase) TakeLastResult(ctx context.Context, sessionID string) (*domain.SubmitResult, error) {
	var taken *domain.SubmitResult
	_, err := u.sessions.update(ctx, sessionID, func(s *domain.UISession) error {
		taken = s.LastResult
		s.LastResult = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return taken, nil
}

// Reset discards the draft, as navigating away from the form does.
func (u *signupUsecase) Reset(ctx context.Context, sessionID string) error {
	_, err := u.sessions.update(ctx, sessionID, func(s *domain.UISession) error {
		s.Signup = domain.NewSignupRequest()
		s.LastResult = nil
		return nil
	})
	return err
}
