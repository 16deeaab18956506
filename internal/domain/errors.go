package domain

import "errors"

// Domain errors.
var (
	ErrSnapshotNotFound   = errors.New("snapshot not found")
	ErrInvalidSnapshot    = errors.New("invalid snapshot format")
	ErrNotLoaded          = errors.New("task tree not loaded (snapshot left for inspection)")
	ErrRootImmutable      = errors.New("root task cannot be renamed")
	ErrRootNotCompletable = errors.New("root task cannot be completed")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrParentNotFound     = errors.New("parent task not found")
	ErrInvalidRecovery    = errors.New("invalid recovery policy")
	ErrConfigExists       = errors.New("config file already exists")
	ErrIDExhausted        = errors.New("no unused task id could be generated")
)

// IsRefusal reports whether err is an operation the tree declined to
// perform. Refusals leave the tree unchanged and are not persisted.
func IsRefusal(err error) bool {
	return errors.Is(err, ErrRootImmutable) ||
		errors.Is(err, ErrRootNotCompletable) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrNotLoaded)
}
