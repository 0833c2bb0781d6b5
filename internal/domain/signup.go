package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownField    = errors.New("unknown signup field")
	ErrUnknownCategory = errors.New("unknown selection category")
	ErrUnknownOption   = errors.New("value is not one of the allowed options")
)

// SignupRequest is the record collected by the signup form and sent to the
// signup endpoint. JSON names are part of the wire contract.
type SignupRequest struct {
	BusinessName      string       `json:"businessName" validate:"notblank"`
	BusinessType      BusinessType `json:"businessType" validate:"business_type"`
	Email             string       `json:"email" validate:"required,email"`
	Website           string       `json:"website"`
	TargetAudience    string       `json:"targetAudience" validate:"notblank"`
	MainGoals         []Goal       `json:"mainGoals" validate:"unique,dive,goal"`
	SocialPlatforms   []Platform   `json:"socialPlatforms" validate:"unique,dive,platform"`
	CurrentChallenges string       `json:"currentChallenges" validate:"notblank"`
}

// FieldName identifies a scalar field of SignupRequest by its wire name.
type FieldName string

const (
	FieldBusinessName      FieldName = "businessName"
	FieldBusinessType      FieldName = "businessType"
	FieldEmail             FieldName = "email"
	FieldWebsite           FieldName = "website"
	FieldTargetAudience    FieldName = "targetAudience"
	FieldCurrentChallenges FieldName = "currentChallenges"
)

func ValidFieldNames() []FieldName {
	return []FieldName{FieldBusinessName, FieldBusinessType, FieldEmail, FieldWebsite, FieldTargetAudience, FieldCurrentChallenges}
}

// SetCategory identifies a set-valued field of SignupRequest by its wire name.
type SetCategory string

const (
	CategoryMainGoals       SetCategory = "mainGoals"
	CategorySocialPlatforms SetCategory = "socialPlatforms"
)

// NewSignupRequest returns the record as it looks when the form mounts.
func NewSignupRequest() SignupRequest {
	return SignupRequest{
		BusinessType:    DefaultBusinessType,
		MainGoals:       []Goal{},
		SocialPlatforms: []Platform{},
	}
}

// Clone returns a copy that shares no slices with r.
func (r SignupRequest) Clone() SignupRequest {
	out := r
	out.MainGoals = append([]Goal{}, r.MainGoals...)
	out.SocialPlatforms = append([]Platform{}, r.SocialPlatforms...)
	return out
}

// UpdateField returns a copy of r with one scalar field set verbatim.
// Values are not validated here.
func (r SignupRequest) UpdateField(name FieldName, value string) (SignupRequest, error) {
	out := r.Clone()
	switch name {
	case FieldBusinessName:
		out.BusinessName = value
	case FieldBusinessType:
		out.BusinessType = BusinessType(value)
	case FieldEmail:
		out.Email = value
	case FieldWebsite:
		out.Website = value
	case FieldTargetAudience:
		out.TargetAudience = value
	case FieldCurrentChallenges:
		out.CurrentChallenges = value
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return out, nil
}

// ToggleSetMembership returns a copy of r with value added to (included) or
// removed from the named set. Repeating a toggle has no further effect.
func (r SignupRequest) ToggleSetMembership(category SetCategory, value string, included bool) (SignupRequest, error) {
	out := r.Clone()
	switch category {
	case CategoryMainGoals:
		g := Goal(value)
		if !g.IsValid() {
			return r, fmt.Errorf("%w: %q for %s", ErrUnknownOption, value, category)
		}
		out.MainGoals = toggle(out.MainGoals, g, included)
	case CategorySocialPlatforms:
		p := Platform(value)
		if !p.IsValid() {
			return r, fmt.Errorf("%w: %q for %s", ErrUnknownOption, value, category)
		}
		out.SocialPlatforms = toggle(out.SocialPlatforms, p, included)
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return out, nil
}

// Normalize returns the copy that goes on the wire: text trimmed, email
// lowercased, nil sets replaced by empty ones.
func (r SignupRequest) Normalize() SignupRequest {
	out := r.Clone()
	out.BusinessName = strings.TrimSpace(out.BusinessName)
	out.Email = strings.ToLower(strings.TrimSpace(out.Email))
	out.Website = strings.TrimSpace(out.Website)
	out.TargetAudience = strings.TrimSpace(out.TargetAudience)
	out.CurrentChallenges = strings.TrimSpace(out.CurrentChallenges)
	return out
}

// HasGoal reports whether g is selected. Used by renderers.
func (r SignupRequest) HasGoal(g Goal) bool {
	return contains(r.MainGoals, g)
}

// HasPlatform reports whether p is selected. Used by renderers.
func (r SignupRequest) HasPlatform(p Platform) bool {
	return contains(r.SocialPlatforms, p)
}

func contains[T comparable](set []T, v T) bool {
	for _, item := range set {
		if item == v {
			return true
		}
	}
	return false
}

// toggle keeps click order and never duplicates. set is owned by the caller.
func toggle[T comparable](set []T, v T, included bool) []T {
	if included {
		if contains(set, v) {
			return set
		}
		return append(set, v)
	}
	out := set[:0]
	for _, item := range set {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}

// ============================================================================
// Submission outcome
// ============================================================================

// SubmitStatus classifies how a submission ended.
type SubmitStatus string

const (
	SubmitSucceeded         SubmitStatus = "succeeded"
	SubmitInvalid           SubmitStatus = "invalid"
	SubmitNetworkFailure    SubmitStatus = "network_failure"
	SubmitRejected          SubmitStatus = "rejected"
	SubmitMalformedResponse SubmitStatus = "malformed_response"
	SubmitInProgress        SubmitStatus = "in_progress"
)

// SubmitResult is what the caller surfaces to the user. Every status carries
// a Message suitable for display.
type SubmitResult struct {
	Status      SubmitStatus    `json:"status"`
	Message     string          `json:"message"`
	FieldErrors []string        `json:"field_errors,omitempty"`
	StatusCode  int             `json:"status_code,omitempty"`
	Ack         json.RawMessage `json:"ack,omitempty" swaggertype:"object"`
}

func (r SubmitResult) Succeeded() bool {
	return r.Status == SubmitSucceeded
}

// SignupAck is the acknowledgement of the signup endpoint. Body is nil when
// the endpoint answered with an empty body.
type SignupAck struct {
	StatusCode int
	Body       json.RawMessage
}

// SignupGateway transmits a record to the external signup endpoint.
type SignupGateway interface {
	Submit(ctx context.Context, req SignupRequest) (*SignupAck, error)
}

type SignupSubmitter interface {
	// Validate checks a record without sending it
	Validate(req SignupRequest) []string

	// Submit validates and sends a record that is not tied to a session
	Submit(ctx context.Context, req SignupRequest) SubmitResult
}

type SignupUsecase interface {
	SignupSubmitter

	// Session-scoped form state
	GetForm(ctx context.Context, sessionID string) (SignupRequest, error)
	UpdateField(ctx context.Context, sessionID string, name FieldName, value string) (SignupRequest, error)
	ToggleSetMembership(ctx context.Context, sessionID string, category SetCategory, value string, included bool) (SignupRequest, error)
	SubmitSession(ctx context.Context, sessionID string) (SubmitResult, error)
	TakeLastResult(ctx context.Context, sessionID string) (*SubmitResult, error)
	Reset(ctx context.Context, sessionID string) error
}
