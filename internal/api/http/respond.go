package http

import (
	"net/http"

	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/httpx"
)

// writeValidationError maps the validation taxonomy onto HTTP status
// codes and writes the uniform error envelope.
func writeValidationError(w http.ResponseWriter, verr *validation.Error) {
	status := http.StatusBadRequest
	switch verr.Kind {
	case validation.KindNotFound:
		status = http.StatusNotFound
	case validation.KindNotAuthorized:
		status = http.StatusForbidden
	}

	httpx.WriteJSON(w, status, ErrorResponse{Error: ErrorBody{
		Kind:     verr.Kind.String(),
		Failures: verr.Failures,
	}})
}

// writeDecodeError handles malformed request bodies before any handler
// logic runs.
func writeDecodeError(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Kind: validation.KindBadRequest.String(),
		Failures: []validation.Failure{
			{Field: "", Message: "Request body is not valid JSON."},
		},
	}})
}
