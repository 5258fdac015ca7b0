package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/transcript-insight/errors"
	dto "github.com/johnquangdev/transcript-insight/internal/adapter/dto/transcript"
	"github.com/johnquangdev/transcript-insight/internal/usecase/ingestion"
)

const transcriptSuffix = ".txt"

// TranscriptHandler handles transcript upload, search and bulk deletion
type TranscriptHandler struct {
	svc    ingestion.Service
	logger *zap.Logger
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(svc ingestion.Service, logger *zap.Logger) *TranscriptHandler {
	return &TranscriptHandler{svc: svc, logger: logger}
}

// Root is the liveness placeholder
func (h *TranscriptHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello World"})
}

// Upload ingests one multipart transcript file. Validation happens before
// any persistence, so a rejected upload leaves no partial writes behind.
func (h *TranscriptHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrValidation("A file upload is required"), "Error processing file")
	}

	if !strings.HasSuffix(file.Filename, transcriptSuffix) {
		return HandleError(h.logger, c, apperrors.ErrValidation("Only .txt files are allowed"), "Error processing file")
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(h.logger, c, err, "Error processing file")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return HandleError(h.logger, c, err, "Error processing file")
	}

	result, err := h.svc.Ingest(c.Request().Context(), file.Filename, content)
	if err != nil {
		return HandleError(h.logger, c, err, "Error processing file")
	}

	return c.JSON(http.StatusOK, dto.UploadResponse{
		Message:      "File uploaded and processed successfully",
		Filename:     result.Filename,
		FilePath:     result.FilePath,
		TranscriptID: result.TranscriptID,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
		ActionItems:  result.ActionItems,
	})
}

// Search runs a relevance-ranked full-text query over stored transcripts
func (h *TranscriptHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrValidation("Invalid search parameters"), "Error searching transcripts")
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err, "Error searching transcripts")
	}
	if req.Limit <= 0 {
		req.Limit = dto.DefaultSearchLimit
	}

	results, err := h.svc.Search(c.Request().Context(), req.Query, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, err, "Error searching transcripts")
	}

	return c.JSON(http.StatusOK, dto.SearchResponse{
		Message: "Search completed successfully",
		Results: results,
	})
}

// DeleteAll removes every node and relationship from the graph
func (h *TranscriptHandler) DeleteAll(c echo.Context) error {
	if err := h.svc.DeleteAll(c.Request().Context()); err != nil {
		return HandleError(h.logger, c, err, "Error deleting data")
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "All data deleted successfully"})
}
