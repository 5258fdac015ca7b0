package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/transcript-insight/errors"
	dto "github.com/johnquangdev/transcript-insight/internal/adapter/dto/transcript"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleError centralizes error handling and logging. Validation failures
// keep their own message and 400 status; everything else collapses into a
// single 500 envelope whose message embeds the original error text, prefixed
// per endpoint ("Error processing file: ...", "Error searching transcripts:
// ..."). Callers cannot distinguish failure classes beyond the HTTP status.
func HandleError(logger *zap.Logger, c echo.Context, err error, prefix string) error {
	reqID := getRequestID(c)

	var appErr apperrors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}

		if appErr.HTTPCode == http.StatusBadRequest {
			return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: appErr.Message})
		}

		detail := appErr.Message
		if appErr.Raw != nil {
			detail = appErr.Raw.Error()
		}
		return c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: fmt.Sprintf("%s: %s", prefix, detail),
		})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.JSON(http.StatusInternalServerError, dto.MessageResponse{
		Message: fmt.Sprintf("%s: %s", prefix, err.Error()),
	})
}
