package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "destination not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a rejected query value.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer.
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

// unavailableBody returns an ErrorResponse for trip data that could not be
// loaded. The cause is logged, not returned: it may name internal hosts.
func unavailableBody(ctx context.Context, err error) gen.ErrorResponse {
	slog.WarnContext(ctx, "trip data unavailable", "error", err)
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "unavailable", Message: "trip data is temporarily unavailable"}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "validation error: unknown priority \"urgent\"" → "unknown priority \"urgent\""
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 && len(msg) > i+len(prefix) {
		return msg[i+len(prefix):]
	}
	return msg
}
