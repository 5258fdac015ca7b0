package repository

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/transcript-insight/errors"
	"github.com/johnquangdev/transcript-insight/internal/domain/entities"
	"github.com/johnquangdev/transcript-insight/internal/infrastructure/database"
)

// TranscriptRepository persists transcripts and action items as graph nodes
type TranscriptRepository struct {
	db     *database.Neo4jDB
	logger *zap.Logger
}

// NewTranscriptRepository creates a new TranscriptRepository
func NewTranscriptRepository(db *database.Neo4jDB, logger *zap.Logger) *TranscriptRepository {
	return &TranscriptRepository{db: db, logger: logger}
}

// CreateTranscript writes one Transcript node. Timestamps are server-assigned
// and equal at creation; they are also stamped into the metadata map, which
// is serialized to a JSON string for storage.
func (r *TranscriptRepository) CreateTranscript(ctx context.Context, t *entities.Transcript) error {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Metadata == nil {
		t.Metadata = make(map[string]string)
	}
	t.Metadata[entities.MetadataCreatedAt] = now.Format(time.RFC3339)
	t.Metadata[entities.MetadataUpdatedAt] = now.Format(time.RFC3339)

	metadataStr, err := json.Marshal(t.Metadata)
	if err != nil {
		return apperrors.ErrStorageFailed("serialize metadata", err)
	}

	session := r.db.Driver().NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			CREATE (t:Transcript {
				id: $id,
				content: $content,
				metadata: $metadata,
				created_at: $created_at,
				updated_at: $updated_at
			})
			RETURN t.id`,
			map[string]any{
				"id":         t.ID,
				"content":    t.Content,
				"metadata":   string(metadataStr),
				"created_at": t.CreatedAt,
				"updated_at": t.UpdatedAt,
			})
		if err != nil {
			return nil, err
		}
		return res.Single(ctx)
	})
	if err != nil {
		if isConstraintViolation(err) {
			return apperrors.ErrTranscriptExists(t.ID)
		}
		return apperrors.ErrStorageFailed("create transcript", err)
	}

	r.logger.Info("transcript node created",
		zap.String("transcript_id", t.ID),
		zap.Int("content_len", len(t.Content)),
	)
	return nil
}

// CreateActionItems writes every item of one upload inside a single
// transaction: the owning Transcript is matched first, then one ActionItem
// node plus one HAS_ACTION_ITEM edge are created per item. Either all items
// land or none do.
func (r *TranscriptRepository) CreateActionItems(ctx context.Context, transcriptID string, items []*entities.ActionItem) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, item := range items {
		item.CreatedAt = now
		item.UpdatedAt = now
	}

	session := r.db.Driver().NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (t:Transcript {id: $transcript_id}) RETURN t.id",
			map[string]any{"transcript_id": transcriptID})
		if err != nil {
			return nil, err
		}
		if _, err := res.Single(ctx); err != nil {
			return nil, errTranscriptMissing
		}

		for _, item := range items {
			params := map[string]any{
				"transcript_id": transcriptID,
				"id":            item.ID,
				"description":   item.Description,
				"status":        item.Status,
				"priority":      item.Priority,
				"owner":         nullable(item.Owner),
				"due_date":      nullable(item.DueDate),
				"timestamp":     nullable(item.Timestamp),
				"extra":         encodeExtra(item.Extra),
				"created_at":    item.CreatedAt,
				"updated_at":    item.UpdatedAt,
			}
			res, err := tx.Run(ctx, `
				MATCH (t:Transcript {id: $transcript_id})
				CREATE (a:ActionItem {
					id: $id,
					description: $description,
					status: $status,
					priority: $priority,
					owner: $owner,
					due_date: $due_date,
					timestamp: $timestamp,
					extra: $extra,
					created_at: $created_at,
					updated_at: $updated_at
				})
				CREATE (t)-[:HAS_ACTION_ITEM]->(a)
				RETURN a.id`,
				params)
			if err != nil {
				return nil, err
			}
			if _, err := res.Single(ctx); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		if stdErrors.Is(err, errTranscriptMissing) {
			return apperrors.ErrTranscriptNotFound(transcriptID)
		}
		return apperrors.ErrStorageFailed("create action items", err)
	}

	r.logger.Info("action items persisted",
		zap.String("transcript_id", transcriptID),
		zap.Int("count", len(items)),
	)
	return nil
}

// MarkExtractionFailed is the compensating action for a failed extraction:
// the Transcript node stays, flagged so it can be found and reprocessed.
func (r *TranscriptRepository) MarkExtractionFailed(ctx context.Context, transcriptID string) error {
	session := r.db.Driver().NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH (t:Transcript {id: $transcript_id})
			SET t.extraction_status = $status, t.updated_at = $updated_at
			RETURN t.id`,
			map[string]any{
				"transcript_id": transcriptID,
				"status":        entities.ExtractionStatusFailed,
				"updated_at":    time.Now().UTC(),
			})
		if err != nil {
			return nil, err
		}
		if _, err := res.Single(ctx); err != nil {
			return nil, errTranscriptMissing
		}
		return nil, nil
	})
	if err != nil {
		if stdErrors.Is(err, errTranscriptMissing) {
			return apperrors.ErrTranscriptNotFound(transcriptID)
		}
		return apperrors.ErrStorageFailed("mark extraction failed", err)
	}
	return nil
}

// Search runs a full-text query over transcript content. Metadata that fails
// to deserialize degrades to an empty map for that record rather than failing
// the whole search.
func (r *TranscriptRepository) Search(ctx context.Context, query string, limit int) ([]entities.SearchResult, error) {
	session := r.db.Driver().NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	records, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			CALL db.index.fulltext.queryNodes("transcriptContent", $query)
			YIELD node, score
			RETURN
				node.content AS content,
				node.metadata AS metadata,
				node.created_at AS created_at,
				node.updated_at AS updated_at,
				score
			ORDER BY score DESC
			LIMIT $limit`,
			map[string]any{"query": query, "limit": limit})
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, apperrors.ErrStorageFailed("search transcripts", err)
	}

	results := make([]entities.SearchResult, 0)
	for _, record := range records.([]*neo4j.Record) {
		sr := entities.SearchResult{Metadata: make(map[string]string)}

		if v, ok := record.Get("content"); ok {
			sr.Content, _ = v.(string)
		}
		if v, ok := record.Get("metadata"); ok {
			if raw, ok := v.(string); ok && raw != "" {
				if err := json.Unmarshal([]byte(raw), &sr.Metadata); err != nil {
					r.logger.Warn("failed to deserialize transcript metadata", zap.Error(err))
					sr.Metadata = make(map[string]string)
				}
			}
		}
		if v, ok := record.Get("created_at"); ok {
			sr.CreatedAt, _ = v.(time.Time)
		}
		if v, ok := record.Get("updated_at"); ok {
			sr.UpdatedAt, _ = v.(time.Time)
		}
		if v, ok := record.Get("score"); ok {
			sr.Score, _ = v.(float64)
		}
		results = append(results, sr)
	}
	return results, nil
}

// DeleteAll removes every node and relationship. Destructive and total.
func (r *TranscriptRepository) DeleteAll(ctx context.Context) error {
	session := r.db.Driver().NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, "MATCH (n) DETACH DELETE n", nil)
		if err != nil {
			return nil, err
		}
		return nil, res.Err()
	})
	if err != nil {
		return apperrors.ErrStorageFailed("delete all data", err)
	}

	r.logger.Warn("all graph data deleted")
	return nil
}

// errTranscriptMissing is a sentinel used inside transaction functions so the
// caller can map it to a NOT_FOUND AppError without string matching.
var errTranscriptMissing = stdErrors.New("transcript missing")

func isConstraintViolation(err error) bool {
	var neoErr *neo4j.Neo4jError
	if stdErrors.As(err, &neoErr) {
		return strings.Contains(neoErr.Code, "ConstraintValidationFailed")
	}
	return false
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// encodeExtra serializes the open extension map to a JSON string property, or
// nil when there is nothing beyond the known schema.
func encodeExtra(extra map[string]any) any {
	if len(extra) == 0 {
		return nil
	}
	b, err := json.Marshal(extra)
	if err != nil {
		return nil
	}
	return string(b)
}
