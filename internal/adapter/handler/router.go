package handler

import (
	"github.com/labstack/echo/v4"
)

// Router holds all handlers
type Router struct {
	transcriptHandler *TranscriptHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(transcriptHandler *TranscriptHandler) *Router {
	return &Router{
		transcriptHandler: transcriptHandler,
	}
}

// Setup configures all application routes. Paths keep their trailing
// slashes; clients depend on the exact form.
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.transcriptHandler.Root)
	e.POST("/upload-transcript/", rt.transcriptHandler.Upload)
	e.GET("/search-transcripts/", rt.transcriptHandler.Search)
	e.DELETE("/delete-all-data/", rt.transcriptHandler.DeleteAll)
}
