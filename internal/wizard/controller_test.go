package wizard

import (
	"testing"

	"resumebuilder-backend/internal/resumes"
)

func completeResume() *resumes.ResumeData {
	return &resumes.ResumeData{
		ProfileInfo: resumes.ProfileInfo{FullName: "Mike", Designation: "Engineer", Summary: "Builds things."},
		ContactInfo: resumes.ContactInfo{Email: "mike@example.com", Phone: "5551234567"},
		WorkExperience: []resumes.WorkExperience{
			{Company: "Acme", Role: "Dev", StartDate: "2020-01", EndDate: "2023-06"},
		},
		Education: []resumes.Education{
			{Degree: "BSc", Institution: "State U", StartDate: "2016-09", EndDate: "2020-06"},
		},
		Skills:         []resumes.Skill{{Name: "Go", Progress: 85}},
		Projects:       []resumes.Project{{Title: "Tool", Description: "A useful tool."}},
		Certifications: []resumes.Certification{{Title: "Cert", Issuer: "Org"}},
		Languages:      []resumes.Language{{Name: "English", Progress: 100}},
		Interests:      []string{"chess"},
	}
}

func TestProgressEndpoints(t *testing.T) {
	if got := Progress(0); got != 0 {
		t.Fatalf("Progress(0) = %d", got)
	}
	if got := Progress(len(Steps) - 1); got != 100 {
		t.Fatalf("Progress(last) = %d", got)
	}
	// Rounded, monotonic in between.
	prev := 0
	for i := 1; i < len(Steps); i++ {
		p := Progress(i)
		if p <= prev {
			t.Fatalf("progress not increasing at index %d: %d <= %d", i, p, prev)
		}
		prev = p
	}
}

func TestAdvanceMovesForwardWhenStepValid(t *testing.T) {
	state := Advance(0, completeResume())
	if state.Index != 1 || state.Step != StepContactInfo {
		t.Fatalf("unexpected state: %+v", state)
	}
	if len(state.Errors) != 0 || state.Signal != SignalNone {
		t.Fatalf("clean advance should have no errors or signal: %+v", state)
	}
}

func TestAdvanceStaysOnValidationFailure(t *testing.T) {
	data := completeResume()
	data.ProfileInfo.FullName = ""

	state := Advance(0, data)
	if state.Index != 0 || state.Step != StepProfileInfo {
		t.Fatalf("failed validation must keep position: %+v", state)
	}
	if len(state.Errors) == 0 {
		t.Fatalf("expected validation messages")
	}
}

func TestAdvancePastLastStepSignalsPreview(t *testing.T) {
	state := Advance(len(Steps)-1, completeResume())
	if state.Signal != SignalReadyForPreview {
		t.Fatalf("expected preview signal, got %+v", state)
	}
	if state.Progress != 100 {
		t.Fatalf("progress = %d", state.Progress)
	}
}

func TestRetreatDropsStaleErrors(t *testing.T) {
	state := Retreat(3)
	if state.Index != 2 {
		t.Fatalf("index = %d", state.Index)
	}
	if len(state.Errors) != 0 {
		t.Fatalf("retreat must not carry messages: %+v", state.Errors)
	}
}

func TestRetreatFromFirstStepSignalsExit(t *testing.T) {
	state := Retreat(0)
	if state.Signal != SignalExitWizard {
		t.Fatalf("expected exit signal, got %+v", state)
	}
	if state.Index != 0 || state.Progress != 0 {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestWholeFlowInOrder(t *testing.T) {
	data := completeResume()
	index := 0
	visited := []Step{Steps[0]}
	for i := 0; i < len(Steps)-1; i++ {
		state := Advance(index, data)
		if len(state.Errors) != 0 {
			t.Fatalf("step %s failed: %v", Steps[index], state.Errors)
		}
		index = state.Index
		visited = append(visited, state.Step)
	}
	if len(visited) != len(Steps) {
		t.Fatalf("visited %d steps, want %d", len(visited), len(Steps))
	}
	for i, step := range Steps {
		if visited[i] != step {
			t.Fatalf("order broken at %d: got %s, want %s", i, visited[i], step)
		}
	}
}
