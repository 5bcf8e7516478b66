package service

import (
	"errors"
	"fmt"
)

// ErrGuestUnsupported is returned for operations that only exist for plants
// stored under a signed-in account.
var ErrGuestUnsupported = errors.New("not available in a guest session; log in first")

// ErrNoSyncPending is returned when a sync is confirmed or declined while
// the reconciler is idle.
var ErrNoSyncPending = errors.New("no guest plants are waiting to be synced")

// RemoteError marks a failure of the remote plant store. The operation that
// hit it was aborted.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote store: %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsRemote reports whether err came from the remote store.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
