package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tucomercio/pkg/errors"
)

// mapFirestoreError translates store failures into the application taxonomy.
// Aborted means the transaction lost a conflict after exhausting its retries,
// which callers may retry; Unavailable covers an unreachable store.
func mapFirestoreError(err error, resource, action string) error {
	switch status.Code(err) {
	case codes.NotFound:
		return errors.NotFound(resource, err)
	case codes.Aborted:
		return errors.Conflict("Concurrent update detected on "+resource, err)
	case codes.Unavailable, codes.DeadlineExceeded:
		return errors.Unavailable("Store unreachable", err)
	default:
		return errors.Internal("Failed to "+action, err)
	}
}
