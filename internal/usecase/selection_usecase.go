package usecase

import (
	"context"

	"social-workflow-web/internal/domain"
)

type selectionUsecase struct {
	sessions *SessionStore
}

func NewSelectionUsecase(sessions *SessionStore) domain.SelectionUsecase {
	return &selectionUsecase{sessions: sessions}
}

func (u *selectionUsecase) GetSelections(ctx context.Context, sessionID string) (domain.Selections, error) {
	sess, err := u.sessions.load(ctx, sessionID)
	if err != nil {
		return domain.Selections{}, err
	}
	return sess.Selections, nil
}

func (u *selectionUsecase) apply(ctx context.Context, sessionID string, reduce func(*domain.Selections) error) (domain.Selections, error) {
	sess, err := u.sessions.update(ctx, sessionID, func(s *domain.UISession) error {
		if err := reduce(&s.Selections); err != nil {
			return reducerError(err)
		}
		return nil
	})
	if err != nil {
		return domain.Selections{}, err
	}
	return sess.Selections, nil
}

func (u *selectionUsecase) SelectNav(ctx context.Context, sessionID string, item domain.NavItem) (domain.Selections, error) {
	return u.apply(ctx, sessionID, func(sel *domain.Selections) error {
		next, err := sel.Dashboard.Select(item)
		sel.Dashboard = next
		return err
	})
}

func (u *selectionUsecase) SelectNavbar(ctx context.Context, sessionID string, item domain.NavbarItem) (domain.Selections, error) {
	return u.apply(ctx, sessionID, func(sel *domain.Selections) error {
		next, err := sel.Navbar.Select(item)
		sel.Navbar = next
		return err
	})
}

func (u *selectionUsecase) ToggleStudioPlatform(ctx context.Context, sessionID string, p domain.StudioPlatform, included bool) (domain.Selections, error) {
	return u.apply(ctx, sessionID, func(sel *domain.Selections) error {
		next, err := sel.Studio.TogglePlatform(p, included)
		sel.Studio = next
		return err
	})
}

func (u *selectionUsecase) SelectStudioContentType(ctx context.Context, sessionID string, t domain.StudioContentType) (domain.Selections, error) {
	return u.apply(ctx, sessionID, func(sel *domain.Selections) error {
		next, err := sel.Studio.SelectContentType(t)
		sel.Studio = next
		return err
	})
}
