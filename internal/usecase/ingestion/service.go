package ingestion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-insight/internal/domain/entities"
	domainrepo "github.com/johnquangdev/transcript-insight/internal/domain/repositories"
	"github.com/johnquangdev/transcript-insight/internal/infrastructure/storage"
)

// Extractor derives action items from transcript text.
type Extractor interface {
	ExtractActionItems(ctx context.Context, transcript string) ([]*entities.ActionItem, error)
}

// Service defines transcript ingestion, search and deletion
type Service interface {
	Ingest(ctx context.Context, filename string, content []byte) (*Result, error)
	Search(ctx context.Context, query string, limit int) ([]entities.SearchResult, error)
	DeleteAll(ctx context.Context) error
}

// Result is the outcome of one successful ingestion
type Result struct {
	TranscriptID string
	Filename     string
	FilePath     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ActionItems  []*entities.ActionItem
}

type service struct {
	transcripts domainrepo.TranscriptRepository
	extractor   Extractor
	uploads     storage.UploadStore
	logger      *zap.Logger
}

// NewService constructs the ingestion service
func NewService(
	transcripts domainrepo.TranscriptRepository,
	extractor Extractor,
	uploads storage.UploadStore,
	logger *zap.Logger,
) Service {
	return &service{
		transcripts: transcripts,
		extractor:   extractor,
		uploads:     uploads,
		logger:      logger,
	}
}

// Ingest runs the upload pipeline strictly in sequence: save the raw file,
// write the Transcript node, call the model, normalize, persist the action
// items. Once the Transcript is written, later failures are not rolled back;
// the node is marked extraction-failed and the whole request reports one
// aggregate failure.
func (s *service) Ingest(ctx context.Context, filename string, content []byte) (*Result, error) {
	path, err := s.uploads.SaveTranscript(ctx, filename, content)
	if err != nil {
		return nil, err
	}

	transcriptID := uuid.New().String()
	metadata := map[string]string{
		entities.MetadataFilename:   filename,
		entities.MetadataUploadDate: time.Now().UTC().Format(time.RFC3339),
		entities.MetadataFilePath:   path,
	}
	transcript := entities.NewTranscript(transcriptID, string(content), metadata)

	if err := s.transcripts.CreateTranscript(ctx, transcript); err != nil {
		return nil, err
	}

	items, err := s.extractor.ExtractActionItems(ctx, transcript.Content)
	if err != nil {
		s.compensate(ctx, transcriptID)
		return nil, err
	}

	for _, item := range items {
		item.ID = uuid.New().String()
	}

	if err := s.transcripts.CreateActionItems(ctx, transcriptID, items); err != nil {
		s.compensate(ctx, transcriptID)
		return nil, err
	}

	s.logger.Info("transcript ingested",
		zap.String("transcript_id", transcriptID),
		zap.String("filename", filename),
		zap.Int("action_items", len(items)),
	)

	return &Result{
		TranscriptID: transcriptID,
		Filename:     filename,
		FilePath:     path,
		CreatedAt:    transcript.CreatedAt,
		UpdatedAt:    transcript.UpdatedAt,
		ActionItems:  items,
	}, nil
}

// compensate flags the already-written Transcript; best-effort, the original
// failure is what the caller sees.
func (s *service) compensate(ctx context.Context, transcriptID string) {
	if err := s.transcripts.MarkExtractionFailed(ctx, transcriptID); err != nil {
		s.logger.Error("failed to mark transcript extraction-failed",
			zap.String("transcript_id", transcriptID),
			zap.Error(err),
		)
	}
}

// Search is a stateless passthrough to the graph store's full-text query
func (s *service) Search(ctx context.Context, query string, limit int) ([]entities.SearchResult, error) {
	return s.transcripts.Search(ctx, query, limit)
}

// DeleteAll removes every node and relationship
func (s *service) DeleteAll(ctx context.Context) error {
	return s.transcripts.DeleteAll(ctx)
}
