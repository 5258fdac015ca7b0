package storage

import (
	"context"
)

// UploadStore persists raw transcript files as received, keyed by original
// filename. Two uploads sharing a filename overwrite the stored object; the
// Transcript nodes stay distinct by generated id.
type UploadStore interface {
	// SaveTranscript writes the raw file and returns the stored path.
	SaveTranscript(ctx context.Context, filename string, content []byte) (string, error)
}
