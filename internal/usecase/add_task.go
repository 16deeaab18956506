package usecase

import (
	"fmt"

	"github.com/runoshun/focustree/internal/domain"
)

// AddTask creates a child of the focused task and moves focus into it.
// Any name is accepted, including "".
func (t *TaskTree) AddTask(name string) (*domain.Node, error) {
	if err := t.checkLoaded(); err != nil {
		return nil, err
	}

	id, err := t.newID()
	if err != nil {
		return nil, err
	}

	parent := t.Focus()
	prevFocus := t.focusID
	child := parent.AddChild(id, name)
	t.focusID = child.ID

	if err := t.persist(); err != nil {
		parent.Children = parent.Children[:len(parent.Children)-1]
		t.focusID = prevFocus
		return nil, err
	}

	t.logger.Info(child.ID, "task", fmt.Sprintf("added %q under %q", name, parent.Name))
	t.emit(domain.ChangeAdded)
	return child, nil
}
