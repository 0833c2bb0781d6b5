package usecase

import (
	"context"

	"social-workflow-web/internal/domain"
)

type healthUsecase struct {
	sessionStore string
	ping         func(ctx context.Context) error
}

// NewHealthUsecase reports on the session store; ping may be nil for stores
// that live in process.
func NewHealthUsecase(sessionStore string, ping func(ctx context.Context) error) domain.HealthUsecase {
	return &healthUsecase{sessionStore: sessionStore, ping: ping}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":        "ok",
		"session_store": u.sessionStore,
	}
	if u.ping != nil {
		if err := u.ping(ctx); err != nil {
			status["status"] = "degraded"
			status["session_store_error"] = err.Error()
		}
	}
	return status
}
