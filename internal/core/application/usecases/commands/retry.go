package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"
)

// maxVersionAttempts bounds how often a transition is re-applied after losing
// an optimistic-concurrency race.
const maxVersionAttempts = 3

// retryOnVersionConflict runs attempt until it stops failing with a version
// conflict. Every attempt reloads the aggregate, so after a lost race the
// domain rules are evaluated against the winner's state.
func retryOnVersionConflict(ctx context.Context, attempt func() error) error {
	var err error
	for range maxVersionAttempts {
		if err = attempt(); !errors.Is(err, errs.ErrVersionIsInvalid) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}
