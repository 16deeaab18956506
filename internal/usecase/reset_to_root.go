package usecase

import "github.com/runoshun/focustree/internal/domain"

// ResetToRoot moves focus back to the root without touching any node.
func (t *TaskTree) ResetToRoot() error {
	if err := t.checkLoaded(); err != nil {
		return err
	}

	prevFocus := t.focusID
	t.focusID = t.root.ID
	if err := t.persist(); err != nil {
		t.focusID = prevFocus
		return err
	}

	t.logger.Info(t.root.ID, "task", "focus reset to root")
	t.emit(domain.ChangeReset)
	return nil
}
