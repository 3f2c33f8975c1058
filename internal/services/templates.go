package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// questionTemplatesSchema constrains questionnaire files loaded from disk
const questionTemplatesSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["id", "question"],
    "additionalProperties": false,
    "properties": {
      "id": {"type": "string", "minLength": 1, "maxLength": 64},
      "question": {"type": "string", "minLength": 1},
      "options": {
        "type": "array",
        "items": {"type": "string", "minLength": 1}
      },
      "required": {"type": "boolean"}
    }
  }
}`

var compiledTemplatesSchema = mustCompileTemplatesSchema()

func mustCompileTemplatesSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("question-templates", strings.NewReader(questionTemplatesSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("question-templates")
}

// LoadQuestionTemplates reads a questionnaire definition from a JSON file
func LoadQuestionTemplates(path string) ([]QuestionTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question templates %q: %w", path, err)
	}
	return ParseQuestionTemplates(data)
}

// ParseQuestionTemplates validates and decodes a questionnaire definition
func ParseQuestionTemplates(data []byte) ([]QuestionTemplate, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed question templates: %v", ErrInvalidInput, err)
	}
	if err := compiledTemplatesSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var templates []QuestionTemplate
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Ids must be unique within a response, which the schema cannot express
	seen := make(map[string]struct{}, len(templates))
	for _, t := range templates {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %q", ErrInvalidInput, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return templates, nil
}
