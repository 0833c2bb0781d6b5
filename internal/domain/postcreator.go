package domain

import (
	"context"
	"fmt"
)

// Step is a post creator wizard step. Navigation is strictly linear.
type Step int

const (
	StepChooseType Step = 1
	StepAddContent Step = 2
	StepSchedule   Step = 3
)

func (s Step) IsValid() bool {
	return s >= StepChooseType && s <= StepSchedule
}

func (s Step) Title() string {
	switch s {
	case StepChooseType:
		return "What would you like to share?"
	case StepAddContent:
		return "Add Your Content"
	case StepSchedule:
		return "When should we post this?"
	}
	return ""
}

// PostCreatorState is an immutable snapshot of the wizard.
type PostCreatorState struct {
	Step     Step       `json:"step"`
	PostType PostType   `json:"post_type,omitempty"`
	Draft    string     `json:"draft"`
	Timing   PostTiming `json:"timing,omitempty"`
}

func NewPostCreatorState() PostCreatorState {
	return PostCreatorState{Step: StepChooseType}
}

// ChooseType records the post type picked on step 1 and advances to step 2.
// Outside step 1 there is no type control, so the snapshot is returned as is.
func (s PostCreatorState) ChooseType(t PostType) (PostCreatorState, error) {
	if !t.IsValid() {
		return s, fmt.Errorf("%w: post type %q", ErrUnknownOption, t)
	}
	if s.Step != StepChooseType {
		return s, nil
	}
	s.PostType = t
	s.Step = StepAddContent
	return s, nil
}

// Next advances one step. Step 3 has no next control; it stays put.
func (s PostCreatorState) Next() PostCreatorState {
	if s.Step < StepSchedule {
		s.Step++
	}
	return s
}

// Back retreats one step. Back from step 1 is a no-op.
func (s PostCreatorState) Back() PostCreatorState {
	if s.Step > StepChooseType {
		s.Step--
	}
	return s
}

// UpdateDraft sets the step 2 text. Only step 2 shows the text area.
func (s PostCreatorState) UpdateDraft(text string) PostCreatorState {
	if s.Step == StepAddContent {
		s.Draft = text
	}
	return s
}

// ChooseTiming highlights a step 3 timing option. Nothing is scheduled.
func (s PostCreatorState) ChooseTiming(t PostTiming) (PostCreatorState, error) {
	if !t.IsValid() {
		return s, fmt.Errorf("%w: timing %q", ErrUnknownOption, t)
	}
	if s.Step == StepSchedule {
		s.Timing = t
	}
	return s, nil
}

type PostCreatorUsecase interface {
	GetPostCreator(ctx context.Context, sessionID string) (PostCreatorState, error)
	ChooseType(ctx context.Context, sessionID string, t PostType) (PostCreatorState, error)
	Next(ctx context.Context, sessionID string) (PostCreatorState, error)
	Back(ctx context.Context, sessionID string) (PostCreatorState, error)
	UpdateDraft(ctx context.Context, sessionID string, text string) (PostCreatorState, error)
	ChooseTiming(ctx context.Context, sessionID string, t PostTiming) (PostCreatorState, error)
}
