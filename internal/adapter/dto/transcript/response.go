package transcript

import (
	"time"

	"github.com/johnquangdev/transcript-insight/internal/domain/entities"
)

// MessageResponse is the uniform envelope for plain outcomes and errors
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse is returned on successful ingestion
type UploadResponse struct {
	Message      string                 `json:"message"`
	Filename     string                 `json:"filename"`
	FilePath     string                 `json:"file_path"`
	TranscriptID string                 `json:"transcript_id"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	ActionItems  []*entities.ActionItem `json:"action_items"`
}

// SearchResponse carries ranked full-text results
type SearchResponse struct {
	Message string                  `json:"message"`
	Results []entities.SearchResult `json:"results"`
}
