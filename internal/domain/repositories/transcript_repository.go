package repositories

import (
	"context"

	"github.com/johnquangdev/transcript-insight/internal/domain/entities"
)

// TranscriptRepository defines graph persistence operations for transcripts
// and their extracted action items
type TranscriptRepository interface {
	// CreateTranscript writes one Transcript node. The repository stamps
	// created_at/updated_at (equal at creation) on the entity and into its
	// metadata map before the write.
	CreateTranscript(ctx context.Context, t *entities.Transcript) error

	// CreateActionItems writes all items of one upload in a single
	// transaction: one ActionItem node plus one HAS_ACTION_ITEM edge from
	// the named Transcript per item. Returns a NOT_FOUND AppError when the
	// transcript does not exist.
	CreateActionItems(ctx context.Context, transcriptID string, items []*entities.ActionItem) error

	// MarkExtractionFailed flags a transcript whose extraction or item
	// persistence failed after the node was written.
	MarkExtractionFailed(ctx context.Context, transcriptID string) error

	// Search runs a full-text query over transcript content, ordered by
	// descending relevance score and truncated to limit.
	Search(ctx context.Context, query string, limit int) ([]entities.SearchResult, error)

	// DeleteAll irreversibly removes every node and relationship.
	DeleteAll(ctx context.Context) error
}
