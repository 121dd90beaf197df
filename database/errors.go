package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArafatSadi1/doctors-portal/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultTimeout bounds a single storage call when the repository is given none.
const DefaultTimeout = 5 * time.Second

// OpContext derives a per-operation context from the caller's, so a cancelled request
// also cancels its storage calls.
func OpContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// WrapErr classifies a driver error into the utils error taxonomy.
func WrapErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, utils.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, utils.ErrConflict)
	default:
		return fmt.Errorf("%w: %s: %w", utils.ErrUpstream, op, err)
	}
}
