package services

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/iamigrante/portal/internal/events"
)

// SubmissionAcceptedMessage is the confirmation text returned for every submission
const SubmissionAcceptedMessage = "Respuestas enviadas correctamente"

// SubmissionResult acknowledges a questionnaire submission
type SubmissionResult struct {
	Success bool   `json:"success" example:"true"                              doc:"Whether the answers were accepted"`
	Message string `json:"message" example:"Respuestas enviadas correctamente" doc:"Confirmation text"`
}

// AnswerService accepts questionnaire answers
type AnswerService struct {
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewAnswerService creates a new answer service. A nil publisher disables events.
func NewAnswerService(publisher events.Publisher, logger *slog.Logger) *AnswerService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &AnswerService{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitAnswers records a submission and acknowledges it.
//
// Answers are not validated and the result is always a success; storage and
// validation are not implemented yet, so a failed event publish is logged only.
func (s *AnswerService) SubmitAnswers(
	ctx context.Context,
	documentType string,
	answers map[string]string,
) SubmissionResult {
	if answers == nil {
		answers = map[string]string{}
	}

	s.logger.InfoContext(ctx, "Answers submitted",
		"document_type", documentType,
		"answer_count", len(answers),
		"answers", answers,
	)

	event := &events.AnswersSubmittedEvent{
		ID:           uuid.NewString(),
		DocumentType: documentType,
		Answers:      maps.Clone(answers),
		SubmittedAt:  s.now().UTC(),
	}
	if err := s.publisher.AnswersSubmitted(ctx, event); err != nil {
		if errors.Is(err, events.ErrEncode) {
			err = errors.Join(ErrSerialization, err)
		}
		s.logger.ErrorContext(ctx, "Failed to publish answers event",
			"error", err,
			"event_id", event.ID,
			"document_type", documentType,
		)
	}

	return SubmissionResult{Success: true, Message: SubmissionAcceptedMessage}
}
