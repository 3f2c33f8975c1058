package main

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/iamigrante/portal/internal/services"
)

// RegisterRoutes registers all Huma operations
func RegisterRoutes(api huma.API, app *App) {
	// Health check
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Check if the API server is running and dependencies are healthy",
		Tags:        []string{"health"},
	}, func(_ context.Context, _ *struct{}) (*HealthOutput, error) {
		// NATS is optional; only report it when configured
		if app.NC != nil && !app.NC.IsConnected() {
			app.Logger.Error("Health check failed: NATS disconnected")
			return nil, huma.Error503ServiceUnavailable("Message queue unavailable")
		}

		resp := &HealthOutput{}
		resp.Body.Status = "ok"
		return resp, nil
	})

	// Questions for a document type
	huma.Register(api, huma.Operation{
		OperationID: "list-document-questions",
		Method:      http.MethodGet,
		Path:        "/api/documents/questions",
		Summary:     "List document questions",
		Description: "Return the questionnaire a client answers to prepare a document",
		Tags:        []string{"documents"},
	}, func(ctx context.Context, input *QuestionsInput) (*QuestionsOutput, error) {
		documentType := input.DocumentType
		if documentType == "" {
			documentType = services.DefaultDocumentType
		}

		resp := &QuestionsOutput{}
		resp.Body.Questions = app.Catalog.QuestionsForDocument(ctx, documentType)
		return resp, nil
	})

	// Submit answers
	huma.Register(api, huma.Operation{
		OperationID: "submit-document-answers",
		Method:      http.MethodPost,
		Path:        "/api/documents/answers",
		Summary:     "Submit document answers",
		Description: "Accept a client's answers to a document questionnaire",
		Tags:        []string{"documents"},
	}, func(ctx context.Context, input *SubmitAnswersInput) (*SubmitAnswersOutput, error) {
		result := app.Answers.SubmitAnswers(ctx, input.Body.DocumentType, input.Body.Answers)
		return &SubmitAnswersOutput{Body: result}, nil
	})

	// Current user
	huma.Register(api, huma.Operation{
		OperationID: "get-current-user",
		Method:      http.MethodGet,
		Path:        "/api/user",
		Summary:     "Get current user",
		Description: "Return the user the portal is acting as",
		Tags:        []string{"users"},
	}, func(ctx context.Context, _ *struct{}) (*UserOutput, error) {
		return &UserOutput{Body: app.Users.Current(ctx)}, nil
	})

	// All users
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/api/users",
		Summary:     "List users",
		Description: "List every account in the user directory",
		Tags:        []string{"users"},
	}, func(_ context.Context, _ *struct{}) (*UsersOutput, error) {
		resp := &UsersOutput{}
		resp.Body.Users = app.Users.List()
		return resp, nil
	})
}
