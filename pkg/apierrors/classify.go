package apierrors

import (
	"errors"
	"net/http"
	"strings"

	"eastask/internal/core/domain"
)

// Classify maps a failed command to an HTTP status and a message key.
// Known sentinels match first; everything else is a best-effort substring
// scan over the error text, the way a browser client would squint at a
// backend error string. Unrecognized errors fall through to a generic
// failure.
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingSession):
		return http.StatusUnauthorized, MsgMissingSession
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, MsgTaskNotFound
	case errors.Is(err, domain.ErrPageNotFound):
		return http.StatusNotFound, MsgPageNotFound
	case errors.Is(err, domain.ErrDependencyCycle):
		return http.StatusConflict, MsgDependencyCycle
	case errors.Is(err, domain.ErrInvalidColor):
		return http.StatusBadRequest, MsgInvalidColor
	}

	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "permission denied") || strings.Contains(text, "access denied"):
		return http.StatusForbidden, MsgPermissionDenied
	case strings.Contains(text, "duplicate"):
		return http.StatusConflict, MsgDuplicateRecord
	case strings.Contains(text, "foreign key"):
		return http.StatusConflict, MsgRelatedRecord
	case strings.Contains(text, "connection refused"),
		strings.Contains(text, "timeout"),
		strings.Contains(text, "network"),
		strings.Contains(text, "broken pipe"):
		return http.StatusBadGateway, MsgNetworkError
	}

	return http.StatusInternalServerError, MsgOperationFailed
}
