package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hangerline/hangerline-backend-go/internal/domain/auth"
	"github.com/hangerline/hangerline-backend-go/internal/domain/linetarget"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrStaffRequired):
		Forbidden(w, err.Error())

	// Line targets
	case errors.Is(err, linetarget.ErrLineTargetNotFound):
		NotFound(w, "Line target not found")
	case errors.Is(err, linetarget.ErrLineTargetDetailNotFound):
		NotFound(w, "Line target detail not found")
	case errors.Is(err, linetarget.ErrLineTargetExists):
		Conflict(w, err.Error())

	// Production store
	case errors.Is(err, production.ErrQueryFailed):
		ServiceUnavailable(w, "Production data is temporarily unavailable")

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
