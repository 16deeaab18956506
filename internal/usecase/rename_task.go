package usecase

import (
	"fmt"

	"github.com/runoshun/focustree/internal/domain"
)

// RenameTask replaces the focused task's name.
// The root cannot be renamed and an empty name is refused.
func (t *TaskTree) RenameTask(name string) error {
	if err := t.checkLoaded(); err != nil {
		return err
	}

	focus := t.Focus()
	if focus.IsRoot() {
		t.logger.Info(focus.ID, "task", "rename refused: root is immutable")
		return domain.ErrRootImmutable
	}
	if name == "" {
		return domain.ErrEmptyName
	}

	oldName := focus.Name
	focus.Name = name
	if err := t.persist(); err != nil {
		focus.Name = oldName
		return err
	}

	t.logger.Info(focus.ID, "task", fmt.Sprintf("renamed %q -> %q", oldName, name))
	t.emit(domain.ChangeRenamed)
	return nil
}
