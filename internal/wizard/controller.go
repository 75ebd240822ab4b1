package wizard

import "resumebuilder-backend/internal/resumes"

// Signal reports a navigation outcome that leaves the step flow.
type Signal string

const (
	// SignalNone means the flow stayed inside the step sequence.
	SignalNone Signal = ""
	// SignalReadyForPreview fires when the last step validates and the
	// flow advances past it.
	SignalReadyForPreview Signal = "ready-for-preview"
	// SignalExitWizard fires when the flow retreats from the first step.
	SignalExitWizard Signal = "exit-wizard"
)

// State is the navigable position within the flow plus any validation
// messages produced by the most recent move attempt.
type State struct {
	Step     Step     `json:"step"`
	Index    int      `json:"index"`
	Progress int      `json:"progress"`
	Errors   []string `json:"errors,omitempty"`
	Signal   Signal   `json:"signal,omitempty"`
}

// Advance validates the current step against data and, if clean, moves
// one step forward. Validation failures keep the position and surface the
// messages on the returned state. Advancing past the last step raises
// SignalReadyForPreview.
func Advance(index int, data *resumes.ResumeData) State {
	if index < 0 {
		index = 0
	}
	if index > len(Steps)-1 {
		index = len(Steps) - 1
	}
	step := Steps[index]

	if errs := ValidateStep(step, data); len(errs) > 0 {
		return State{Step: step, Index: index, Progress: Progress(index), Errors: errs}
	}
	if IsLast(index) {
		return State{Step: step, Index: index, Progress: 100, Signal: SignalReadyForPreview}
	}
	next := index + 1
	return State{Step: Steps[next], Index: next, Progress: Progress(next)}
}

// Retreat moves one step backwards without validating; stale messages
// from the step being left are dropped. Retreating from the first step
// raises SignalExitWizard.
func Retreat(index int) State {
	if index > len(Steps)-1 {
		index = len(Steps) - 1
	}
	if IsFirst(index) {
		return State{Step: Steps[0], Index: 0, Progress: 0, Signal: SignalExitWizard}
	}
	prev := index - 1
	return State{Step: Steps[prev], Index: prev, Progress: Progress(prev)}
}

// At returns the resting state for the given index with no messages.
func At(index int) State {
	if index < 0 {
		index = 0
	}
	if index > len(Steps)-1 {
		index = len(Steps) - 1
	}
	return State{Step: Steps[index], Index: index, Progress: Progress(index)}
}
