package main

import "github.com/iamigrante/portal/internal/services"

// HealthOutput is the health check response
type HealthOutput struct {
	Body struct {
		Status string `json:"status" example:"ok" doc:"Service status"`
	}
}

// QuestionsInput selects the document type to build questions for
type QuestionsInput struct {
	DocumentType string `query:"documentType" default:"general" doc:"Document type identifier"`
}

// QuestionsOutput is the questionnaire response
type QuestionsOutput struct {
	Body struct {
		Questions []services.DocumentQuestion `json:"questions" doc:"Ordered questions"`
	}
}

// SubmitAnswersInput carries a questionnaire submission
type SubmitAnswersInput struct {
	Body struct {
		DocumentType string            `json:"documentType,omitempty" example:"general" doc:"Document type the answers belong to"`
		Answers      map[string]string `json:"answers,omitempty"                         doc:"Answer text keyed by question id"`
	}
}

// SubmitAnswersOutput acknowledges a submission
type SubmitAnswersOutput struct {
	Body services.SubmissionResult
}

// UserOutput is a single user response
type UserOutput struct {
	Body services.User
}

// UsersOutput lists users
type UsersOutput struct {
	Body struct {
		Users []services.User `json:"users" doc:"Every user in directory order"`
	}
}
