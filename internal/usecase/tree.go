// Package usecase contains application use cases.
package usecase

import (
	"errors"
	"fmt"

	"github.com/runoshun/focustree/internal/domain"
)

// LoadStatus describes how the tree was obtained at construction.
type LoadStatus string

// Load statuses.
const (
	LoadCreated   LoadStatus = "created"    // No snapshot existed; a fresh one was written
	LoadLoaded    LoadStatus = "loaded"     // Snapshot loaded
	LoadRecreated LoadStatus = "recreated"  // Snapshot was invalid and replaced with a fresh tree
	LoadNotLoaded LoadStatus = "not_loaded" // Snapshot was invalid and left for inspection
)

// LoadResult reports the outcome of construction.
type LoadResult struct {
	Cause        error      // Format error that triggered recovery (nil otherwise)
	Status       LoadStatus // How the tree was obtained
	FocusMissing bool       // Stored focus ID did not resolve; focus fell back to root
}

// TaskTree owns the task tree and the focus pointer, and writes a full
// snapshot after every mutation. It is not safe for concurrent use.
type TaskTree struct {
	repo      domain.SnapshotRepository
	recovery  domain.RecoveryPolicy
	ids       domain.IDGenerator
	logger    domain.Logger
	root      *domain.Node
	observers []func(domain.ChangeEvent)
	result    LoadResult
	focusID   string
}

// NewTaskTree loads the tree from repo, creating or recovering it as needed.
// A nil recovery policy always recreates; nil ids and logger use defaults.
// The returned error is reserved for I/O failures; format errors are handled
// by recovery and reported through LoadResult.
func NewTaskTree(
	repo domain.SnapshotRepository,
	recovery domain.RecoveryPolicy,
	ids domain.IDGenerator,
	logger domain.Logger,
) (*TaskTree, error) {
	if ids == nil {
		ids = domain.UUIDGenerator{}
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	t := &TaskTree{
		repo:     repo,
		recovery: recovery,
		ids:      ids,
		logger:   logger,
	}
	t.resetFresh()

	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TaskTree) load() error {
	snap, err := t.repo.Load()
	switch {
	case err == nil:
		root, buildErr := snap.Build()
		if buildErr != nil {
			return t.recover(buildErr)
		}
		t.root = root
		t.focusID = snap.CurrentTaskID
		t.result = LoadResult{Status: LoadLoaded}
		if domain.FindTaskByID(t.root, t.focusID) == nil {
			t.logger.Warn("", "load", fmt.Sprintf("focus %q not found, falling back to root", snap.CurrentTaskID))
			t.focusID = t.root.ID
			t.result.FocusMissing = true
		}
		t.logger.Info(t.focusID, "load", fmt.Sprintf("loaded %s (focus: %q)", t.repo.Path(), t.Focus().Name))
		return nil

	case errors.Is(err, domain.ErrSnapshotNotFound):
		if saveErr := t.persist(); saveErr != nil {
			return saveErr
		}
		t.result = LoadResult{Status: LoadCreated}
		t.logger.Info("", "load", fmt.Sprintf("created %s", t.repo.Path()))
		return nil

	case errors.Is(err, domain.ErrInvalidSnapshot):
		return t.recover(err)

	default:
		return fmt.Errorf("load snapshot: %w", err)
	}
}

// recover runs the corruption-recovery path for a snapshot that failed with cause.
func (t *TaskTree) recover(cause error) error {
	t.logger.Warn("", "load", fmt.Sprintf("invalid snapshot %s: %v", t.repo.Path(), cause))

	choice := domain.RecoveryRecreate
	if t.recovery != nil {
		decided, err := t.recovery.Decide(t.repo.Path(), cause)
		switch {
		case err != nil:
			t.logger.Warn("", "recovery", fmt.Sprintf("no decision (%v), recreating", err))
		case decided == domain.RecoveryInspect:
			choice = decided
		case decided != domain.RecoveryRecreate:
			t.logger.Warn("", "recovery", fmt.Sprintf("unknown choice %q, recreating", decided))
		}
	}

	t.resetFresh()
	if choice == domain.RecoveryInspect {
		t.result = LoadResult{Status: LoadNotLoaded, Cause: cause}
		t.logger.Info("", "recovery", "left snapshot untouched for inspection")
		return nil
	}

	if err := t.persist(); err != nil {
		return err
	}
	t.result = LoadResult{Status: LoadRecreated, Cause: cause}
	t.logger.Info("", "recovery", fmt.Sprintf("recreated %s", t.repo.Path()))
	return nil
}

// resetFresh replaces the in-memory tree with a single root.
func (t *TaskTree) resetFresh() {
	t.root = domain.NewNode(t.ids.NewID(), domain.RootName, "")
	t.focusID = t.root.ID
}

// LoadResult returns how the tree was obtained at construction.
func (t *TaskTree) LoadResult() LoadResult {
	return t.result
}

// Loaded reports whether the tree is backed by the snapshot. It is false
// only after an "inspect" recovery decision, in which case all mutations
// are refused with ErrNotLoaded.
func (t *TaskTree) Loaded() bool {
	return t.result.Status != LoadNotLoaded
}

// Root returns the root node.
func (t *TaskTree) Root() *domain.Node {
	return t.root
}

// Focus returns the focused node, resolving the focus ID against the tree.
// It never returns nil: an unresolvable focus yields the root.
func (t *TaskTree) Focus() *domain.Node {
	if n := domain.FindTaskByID(t.root, t.focusID); n != nil {
		return n
	}
	return t.root
}

// FocusPath returns the nodes from root to the focused node.
func (t *TaskTree) FocusPath() []*domain.Node {
	return domain.PathTo(t.root, t.Focus().ID)
}

// Snapshot returns the current durable representation.
func (t *TaskTree) Snapshot() *domain.Snapshot {
	return domain.NewSnapshot(t.root, t.Focus().ID)
}

// Path returns the snapshot location.
func (t *TaskTree) Path() string {
	return t.repo.Path()
}

// Subscribe registers fn to be called after each persisted mutation.
// Observers run synchronously in registration order.
func (t *TaskTree) Subscribe(fn func(domain.ChangeEvent)) {
	t.observers = append(t.observers, fn)
}

func (t *TaskTree) persist() error {
	if err := t.repo.Save(t.Snapshot()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (t *TaskTree) emit(kind domain.ChangeKind) {
	focus := t.Focus()
	ev := domain.ChangeEvent{Kind: kind, FocusID: focus.ID, FocusName: focus.Name}
	for _, fn := range t.observers {
		fn(ev)
	}
}

func (t *TaskTree) checkLoaded() error {
	if !t.Loaded() {
		return domain.ErrNotLoaded
	}
	return nil
}

// maxIDAttempts bounds how often newID asks the generator for a fresh ID.
const maxIDAttempts = 16

// newID returns an ID not present in the tree.
func (t *TaskTree) newID() (string, error) {
	for range maxIDAttempts {
		id := t.ids.NewID()
		if id != "" && domain.FindTaskByID(t.root, id) == nil {
			return id, nil
		}
	}
	return "", fmt.Errorf("%d attempts: %w", maxIDAttempts, domain.ErrIDExhausted)
}
