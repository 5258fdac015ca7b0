package entities

import (
	"time"
)

// Metadata keys stamped onto every transcript at upload time.
const (
	MetadataFilename   = "filename"
	MetadataUploadDate = "upload_date"
	MetadataFilePath   = "file_path"
	MetadataCreatedAt  = "created_at"
	MetadataUpdatedAt  = "updated_at"
)

// ExtractionStatus values for Transcript.ExtractionStatus.
const (
	ExtractionStatusFailed = "failed"
)

// Transcript is a stored meeting text document plus metadata. Content and ID
// are immutable after creation; the node is never updated individually (only
// the bulk delete-all operation removes it), with one exception: a failed
// extraction marks the node so operators can find uploads without items.
type Transcript struct {
	ID               string            `json:"id"`
	Content          string            `json:"content"`
	Metadata         map[string]string `json:"metadata"`
	ExtractionStatus string            `json:"extraction_status,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// NewTranscript creates a transcript pending persistence. Timestamps are
// stamped by the repository on write so they are server-assigned and equal.
func NewTranscript(id, content string, metadata map[string]string) *Transcript {
	if metadata == nil {
		metadata = make(map[string]string)
	}
	return &Transcript{
		ID:       id,
		Content:  content,
		Metadata: metadata,
	}
}

// SearchResult is one relevance-ranked full-text hit over transcript content.
type SearchResult struct {
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Score     float64           `json:"score"`
}
