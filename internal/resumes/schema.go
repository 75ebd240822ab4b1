package resumes

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchemaJSON []byte

var resumeSchema *gojsonschema.Schema

func init() {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("resumes: invalid embedded schema: %v", err))
	}
	resumeSchema = schema
}

// ValidatePayload checks a raw update body against the resume JSON schema.
// It returns one human-readable message per violation; an empty slice means
// the payload is structurally valid.
func ValidatePayload(body []byte) ([]string, error) {
	result, err := resumeSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("schema validate: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return msgs, nil
}
