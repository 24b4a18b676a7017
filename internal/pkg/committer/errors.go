package committer

import (
	"errors"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
)

// IsAlreadyExists reports whether a commit failed because a row or a unique
// index entry was already present.
func IsAlreadyExists(err error) bool {
	return err != nil && spanner.ErrCode(err) == codes.AlreadyExists
}

// IsNotFound reports whether a commit or read failed on a missing row.
func IsNotFound(err error) bool {
	return err != nil && spanner.ErrCode(err) == codes.NotFound
}

// IsVersionConflict reports whether err is an optimistic lock failure.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}
