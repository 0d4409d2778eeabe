package usecase

import (
	"context"

	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/slogx"
)

// wrapFault logs an infrastructure failure and converts it into the
// field-less bad-request shape callers surface to clients.
func wrapFault(ctx context.Context, op string, err error) *validation.Error {
	slogx.FromContext(ctx).Error("usecase failure", "op", op, "error", err)
	return validation.BadRequestFailures(validation.Failure{Field: "", Message: err.Error()})
}
