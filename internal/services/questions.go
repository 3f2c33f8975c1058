// Package services contains business logic and orchestration
package services

import (
	"context"
	"slices"
)

// DefaultDocumentType is used when a caller does not name a document type
const DefaultDocumentType = "general"

// DocumentQuestion is a single prompt returned by a question catalog
type DocumentQuestion struct {
	ID           string   `json:"id"                 example:"q1"      doc:"Question identifier, unique within a response"`
	Question     string   `json:"question"                             doc:"Prompt text"`
	Options      []string `json:"options,omitempty"                    doc:"Choice labels, absent for free-text questions"`
	Required     bool     `json:"required,omitempty" example:"true"    doc:"Whether an answer is required"`
	DocumentType string   `json:"documentType"       example:"general" doc:"Document type the question was requested for"`
}

// QuestionTemplate describes a question independent of any document type
type QuestionTemplate struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required,omitempty"`
}

// QuestionCatalog produces the questions a client must answer for a document type.
// Implementations must be total: every document type, including "", yields a result.
type QuestionCatalog interface {
	QuestionsForDocument(ctx context.Context, documentType string) []DocumentQuestion
}

// DefaultQuestionTemplates returns the built-in questionnaire
func DefaultQuestionTemplates() []QuestionTemplate {
	return []QuestionTemplate{
		{
			ID:       "q1",
			Question: "¿Cuál es el propósito del documento?",
			Options: []string{
				"Visa de trabajo",
				"Residencia permanente",
				"Asilo",
				"Reunificación familiar",
			},
			Required: true,
		},
		{
			ID:       "q2",
			Question: "¿Cuál es la fecha de emisión del documento?",
			Required: true,
		},
		{
			ID:       "q3",
			Question: "¿Quién es el solicitante principal?",
			Required: true,
		},
	}
}

// TemplateCatalog serves the same ordered questionnaire for every document type.
// The document type is echoed onto each question and does not select questions.
type TemplateCatalog struct {
	templates []QuestionTemplate
}

// NewTemplateCatalog creates a catalog over a copy of the given templates
func NewTemplateCatalog(templates []QuestionTemplate) *TemplateCatalog {
	owned := make([]QuestionTemplate, len(templates))
	for i, t := range templates {
		t.Options = slices.Clone(t.Options)
		owned[i] = t
	}
	return &TemplateCatalog{templates: owned}
}

// QuestionsForDocument returns fresh question records stamped with documentType
func (c *TemplateCatalog) QuestionsForDocument(
	_ context.Context,
	documentType string,
) []DocumentQuestion {
	questions := make([]DocumentQuestion, len(c.templates))
	for i, t := range c.templates {
		questions[i] = DocumentQuestion{
			ID:           t.ID,
			Question:     t.Question,
			Options:      slices.Clone(t.Options),
			Required:     t.Required,
			DocumentType: documentType,
		}
	}
	return questions
}
