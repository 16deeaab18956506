package usecase

import (
	"fmt"

	"github.com/runoshun/focustree/internal/domain"
)

// CompleteTask moves focus from the current task to its parent and returns
// the new focus. The completed task and its subtree stay in the tree.
// Completing the root is refused with ErrRootNotCompletable.
func (t *TaskTree) CompleteTask() (*domain.Node, error) {
	if err := t.checkLoaded(); err != nil {
		return nil, err
	}

	focus := t.Focus()
	if focus.IsRoot() {
		t.logger.Info(focus.ID, "task", "complete refused: root has no parent")
		return nil, domain.ErrRootNotCompletable
	}

	parent := domain.FindParent(t.root, focus)
	if parent == nil {
		return nil, fmt.Errorf("complete %q: %w", focus.Name, domain.ErrParentNotFound)
	}

	t.focusID = parent.ID
	if err := t.persist(); err != nil {
		t.focusID = focus.ID
		return nil, err
	}

	t.logger.Info(focus.ID, "task", fmt.Sprintf("completed %q, focus back to %q", focus.Name, parent.Name))
	t.emit(domain.ChangeCompleted)
	return parent, nil
}
