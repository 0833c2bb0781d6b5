package domain

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// UISession holds every UI snapshot of one visitor. It is short lived: it
// expires after the configured TTL, which is how an abandoned form is
// discarded.
type UISession struct {
	ID          string           `json:"id"`
	Signup      SignupRequest    `json:"signup"`
	LastResult  *SubmitResult    `json:"last_result,omitempty"`
	PostCreator PostCreatorState `json:"post_creator"`
	Selections  Selections       `json:"selections"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewUISession returns the state of a freshly mounted UI.
func NewUISession(id string) *UISession {
	return &UISession{
		ID:          id,
		Signup:      NewSignupRequest(),
		PostCreator: NewPostCreatorState(),
		Selections: Selections{
			Dashboard: NewDashboardState(),
			Studio:    NewStudioState(),
			Navbar:    NewNavbarState(),
		},
		UpdatedAt: time.Now(),
	}
}

type SessionRepository interface {
	Get(ctx context.Context, id string) (*UISession, error)
	Save(ctx context.Context, s *UISession) error
	Delete(ctx context.Context, id string) error
}
