// Package errors provides the structured error type used across the
// converter.
//
// Only conditions that stop a run are returned as errors. Problems with a
// single edit (unknown field, out of range value, unknown mnemonic) are
// recorded as session warnings instead.
//
// Creating errors:
//
//	err := errors.NotFoundf("no attack entry for thing %d", id)
//	err := errors.ResourceExhaustedf("cast table full (%d entries)", max)
//
// Adding metadata:
//
//	err := errors.FailedPreconditionf("merge target %s missing", name).
//	    WithEntity("thing", id)
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, run); err != nil {
//	    return errors.Wrap(err, "failed to persist lumps")
//	}
//
// Checking errors:
//
//	if errors.IsFatal(err) {
//	    return err
//	}
package errors
