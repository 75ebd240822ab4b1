package resumes

import "testing"

func TestValidatePayloadAcceptsValidSkillProgress(t *testing.T) {
	body := []byte(`{"title":"My Resume","skills":[{"name":"Go","progress":85}]}`)

	violations, err := ValidatePayload(body)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected clean payload, got %v", violations)
	}
}

func TestValidatePayloadRejectsOutOfRangeProgress(t *testing.T) {
	body := []byte(`{"title":"My Resume","skills":[{"name":"Go","progress":150}]}`)

	violations, err := ValidatePayload(body)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(violations) == 0 {
		t.Fatalf("expected a violation for progress 150")
	}
}

func TestValidatePayloadRejectsWrongTypes(t *testing.T) {
	body := []byte(`{"title":42}`)

	violations, err := ValidatePayload(body)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(violations) == 0 {
		t.Fatalf("expected a violation for non-string title")
	}
}

func TestValidatePayloadRejectsMalformedJSON(t *testing.T) {
	if _, err := ValidatePayload([]byte(`{"title":`)); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}
