package wizard

import (
	"strings"
	"testing"

	"resumebuilder-backend/internal/resumes"
)

func TestValidateProfileInfoRequiresAllFields(t *testing.T) {
	data := &resumes.ResumeData{}
	errs := ValidateStep(StepProfileInfo, data)
	if len(errs) != 3 {
		t.Fatalf("expected 3 messages, got %v", errs)
	}
}

func TestValidateContactInfoEmailFormat(t *testing.T) {
	data := &resumes.ResumeData{
		ContactInfo: resumes.ContactInfo{Email: "not-an-email", Phone: "5551234567"},
	}
	errs := ValidateStep(StepContactInfo, data)
	if len(errs) != 1 || !strings.Contains(errs[0], "email") {
		t.Fatalf("expected email message, got %v", errs)
	}

	data.ContactInfo.Email = "mike@example.com"
	if errs := ValidateStep(StepContactInfo, data); len(errs) != 0 {
		t.Fatalf("valid contact info rejected: %v", errs)
	}
}

func TestValidateWorkExperiencePairedDates(t *testing.T) {
	data := &resumes.ResumeData{
		WorkExperience: []resumes.WorkExperience{
			{Company: "Acme", Role: "Dev", StartDate: "2020-01"},
		},
	}
	errs := ValidateStep(StepWorkExperience, data)
	if len(errs) != 1 || !strings.Contains(errs[0], "dates") {
		t.Fatalf("expected paired-dates message, got %v", errs)
	}
}

func TestValidateSkillsProgressRange(t *testing.T) {
	data := &resumes.ResumeData{
		Skills: []resumes.Skill{{Name: "Go", Progress: 0}},
	}
	errs := ValidateStep(StepSkills, data)
	if len(errs) != 1 {
		t.Fatalf("expected range message for progress 0, got %v", errs)
	}

	data.Skills[0].Progress = 100
	if errs := ValidateStep(StepSkills, data); len(errs) != 0 {
		t.Fatalf("progress 100 should pass: %v", errs)
	}
}

func TestValidateMessagesNameEntryPosition(t *testing.T) {
	data := &resumes.ResumeData{
		Projects: []resumes.Project{
			{Title: "Good", Description: "Fine"},
			{Title: "", Description: ""},
		},
	}
	errs := ValidateStep(StepProjects, data)
	if len(errs) != 2 {
		t.Fatalf("expected 2 messages, got %v", errs)
	}
	for _, msg := range errs {
		if !strings.Contains(msg, "project 2") {
			t.Fatalf("message should name the second entry: %q", msg)
		}
	}
}

func TestValidateAdditionalInfoNeedsLanguageAndInterest(t *testing.T) {
	data := &resumes.ResumeData{
		Languages: []resumes.Language{{Name: " "}},
		Interests: []string{""},
	}
	errs := ValidateStep(StepAdditionalInfo, data)
	if len(errs) != 2 {
		t.Fatalf("expected 2 messages, got %v", errs)
	}

	data.Languages = []resumes.Language{{Name: "English"}}
	data.Interests = []string{"chess"}
	if errs := ValidateStep(StepAdditionalInfo, data); len(errs) != 0 {
		t.Fatalf("filled additional info rejected: %v", errs)
	}
}

func TestValidateUnknownStepIsClean(t *testing.T) {
	if errs := ValidateStep(Step("unknown"), &resumes.ResumeData{}); len(errs) != 0 {
		t.Fatalf("unknown step should validate clean: %v", errs)
	}
}
