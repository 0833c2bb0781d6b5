package usecase

import (
	"context"

	"social-workflow-web/internal/domain"
)

type postCreatorUsecase struct {
	sessions *SessionStore
}

func NewPostCreatorUsecase(sessions *SessionStore) domain.PostCreatorUsecase {
	return &postCreatorUsecase{sessions: sessions}
}

func (u *postCreatorUsecase) GetPostCreator(ctx context.Context, sessionID string) (domain.PostCreatorState, error) {
	sess, err := u.sessions.load(ctx, sessionID)
	if err != nil {
		return domain.PostCreatorState{}, err
	}
	return sess.PostCreator, nil
}

// apply runs reduce against the session's wizard snapshot
func (u *postCreatorUsecase) apply(ctx context.Context, sessionID string, reduce func(domain.PostCreatorState) (domain.PostCreatorState, error)) (domain.PostCreatorState, error) {
	sess, err := u.sessions.update(ctx, sessionID, func(s *domain.UISession) error {
		next, err := reduce(s.PostCreator)
		if err != nil {
			return reducerError(err)
		}
		s.PostCreator = next
		return nil
	})
	if err != nil {
		return domain.PostCreatorState{}, err
	}
	return sess.PostCreator, nil
}

func (u *postCreatorUsecase) ChooseType(ctx context.Context, sessionID string, t domain.PostType) (domain.PostCreatorState, error) {
	return u.apply(ctx, sessionID, func(s domain.PostCreatorState) (domain.PostCreatorState, error) {
		return s.ChooseType(t)
	})
}

func (u *postCreatorUsecase) Next(ctx context.Context, sessionID string) (domain.PostCreatorState, error) {
	return u.apply(ctx, sessionID, func(s domain.PostCreatorState) (domain.PostCreatorState, error) {
		return s.Next(), nil
	})
}

func (u *postCreatorUsecase) Back(ctx context.Context, sessionID string) (domain.PostCreatorState, error) {
	return u.apply(ctx, sessionID, func(s domain.PostCreatorState) (domain.PostCreatorState, error) {
		return s.Back(), nil
	})
}

func (u *postCreatorUsecase) UpdateDraft(ctx context.Context, sessionID string, text string) (domain.PostCreatorState, error) {
	return u.apply(ctx, sessionID, func(s domain.PostCreatorState) (domain.PostCreatorState, error) {
		return s.UpdateDraft(text), nil
	})
}

func (u *postCreatorUsecase) ChooseTiming(ctx context.Context, sessionID string, t domain.PostTiming) (domain.PostCreatorState, error) {
	return u.apply(ctx, sessionID, func(s domain.PostCreatorState) (domain.PostCreatorState, error) {
		return s.ChooseTiming(t)
	})
}
