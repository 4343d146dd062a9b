// Package schemas embeds the JSON Schemas for documents the CLI accepts
// from disk and validates payloads against them before anything is sent to
// the server.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed job.schema.json
var jobSchema []byte

// ValidationError carries the field-level messages from a failed schema
// validation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid job draft: " + strings.Join(e.Messages, "; ")
}

// ValidateJobDraft checks a job-draft JSON document against the embedded
// schema. A nil return means the draft is structurally valid; field content
// is still validated server-side.
func ValidateJobDraft(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(jobSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate job draft: %w", err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return &ValidationError{Messages: messages}
}
