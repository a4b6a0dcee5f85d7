package query

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned whenever a parameter could not be parsed into its expected type
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrStorageUnavailable is returned whenever the backing store failed to execute a query
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCancelled is returned whenever the caller abandoned an operation before it completed
	ErrCancelled = errors.New("cancelled")
)

// StorageError classifies an error returned by a backing store.
// Errors caused by the cancellation of ctx wrap ErrCancelled, all others ErrStorageUnavailable.
// Errors that are already classified are returned unchanged.
func StorageError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrCancelled) || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
