package domain

import (
	"context"
	"fmt"
)

// Selection snapshots only drive highlighting; they have no downstream effect.

type DashboardState struct {
	ActiveNav NavItem `json:"active_nav"`
}

func NewDashboardState() DashboardState {
	return DashboardState{ActiveNav: NavDashboard}
}

// Select makes item the active entry. Last click wins.
func (s DashboardState) Select(item NavItem) (DashboardState, error) {
	if !item.IsValid() {
		return s, fmt.Errorf("%w: nav item %q", ErrUnknownOption, item)
	}
	s.ActiveNav = item
	return s, nil
}

type NavbarState struct {
	Active NavbarItem `json:"active"`
}

func NewNavbarState() NavbarState {
	return NavbarState{Active: NavbarHome}
}

func (s NavbarState) Select(item NavbarItem) (NavbarState, error) {
	if !item.IsValid() {
		return s, fmt.Errorf("%w: navbar item %q", ErrUnknownOption, item)
	}
	s.Active = item
	return s, nil
}

type StudioState struct {
	Platforms   []StudioPlatform  `json:"platforms"`
	ContentType StudioContentType `json:"content_type,omitempty"`
}

func NewStudioState() StudioState {
	return StudioState{Platforms: []StudioPlatform{}}
}

// TogglePlatform adds or removes p. Platforms accumulate without duplicates.
func (s StudioState) TogglePlatform(p StudioPlatform, included bool) (StudioState, error) {
	if !p.IsValid() {
		return s, fmt.Errorf("%w: studio platform %q", ErrUnknownOption, p)
	}
	platforms := append([]StudioPlatform{}, s.Platforms...)
	s.Platforms = toggle(platforms, p, included)
	return s, nil
}

// SelectContentType is single select; last click wins.
func (s StudioState) SelectContentType(t StudioContentType) (StudioState, error) {
	if !t.IsValid() {
		return s, fmt.Errorf("%w: content type %q", ErrUnknownOption, t)
	}
	s.ContentType = t
	return s, nil
}

func (s StudioState) HasPlatform(p StudioPlatform) bool {
	return contains(s.Platforms, p)
}

// Selections groups the snapshots of every selection group.
type Selections struct {
	Dashboard DashboardState `json:"dashboard"`
	Studio    StudioState    `json:"studio"`
	Navbar    NavbarState    `json:"navbar"`
}

type SelectionUsecase interface {
	GetSelections(ctx context.Context, sessionID string) (Selections, error)
	SelectNav(ctx context.Context, sessionID string, item NavItem) (Selections, error)
	SelectNavbar(ctx context.Context, sessionID string, item NavbarItem) (Selections, error)
	ToggleStudioPlatform(ctx context.Context, sessionID string, p StudioPlatform, included bool) (Selections, error)
	SelectStudioContentType(ctx context.Context, sessionID string, t StudioContentType) (Selections, error)
}
