package extraction

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/transcript-insight/errors"
	"github.com/johnquangdev/transcript-insight/internal/domain/entities"
)

// LLM is the single call this service needs from the model client.
type LLM interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service derives action items from transcript text via one synchronous
// model call followed by normalization
type Service struct {
	llm    LLM
	logger *zap.Logger
}

// NewService creates a new extraction service
func NewService(llm LLM, logger *zap.Logger) *Service {
	return &Service{llm: llm, logger: logger}
}

// ExtractActionItems fills the prompt with the transcript, calls the model
// once and normalizes whatever comes back. Transport or auth errors from the
// model surface as an EXTRACTION_FAILED AppError; normalization itself never
// fails.
func (s *Service) ExtractActionItems(ctx context.Context, transcript string) ([]*entities.ActionItem, error) {
	prompt := fmt.Sprintf(actionItemPrompt, transcript)

	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, apperrors.ErrExtractionFailed(err)
	}

	items := Normalize(raw)

	s.logger.Info("extraction complete",
		zap.Int("transcript_len", len(transcript)),
		zap.Int("raw_len", len(raw)),
		zap.Int("action_items", len(items)),
	)
	return items, nil
}
