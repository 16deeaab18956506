// Package tui provides the focus bar, a small always-visible view of the
// focused task with single-key task actions.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/focustree/internal/domain"
)

// Tree is the part of the task tree the focus bar drives.
type Tree interface {
	Focus() *domain.Node
	FocusPath() []*domain.Node
	AddTask(name string) (*domain.Node, error)
	RenameTask(name string) error
	CompleteTask() (*domain.Node, error)
	ResetToRoot() error
	Subscribe(fn func(domain.ChangeEvent))
}

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeRename
)

// Model is the focus bar model.
type Model struct {
	tree        Tree
	err         error
	keys        KeyMap
	styles      Styles
	help        help.Model
	input       textinput.Model
	message     string
	defaultName string
	mode        Mode
}

// New creates a focus bar for tree. defaultName is used for new tasks.
func New(tree Tree, defaultName string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task name"
	ti.CharLimit = 200

	m := &Model{
		tree:        tree,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		input:       ti,
		defaultName: defaultName,
		mode:        ModeNormal,
	}
	tree.Subscribe(m.onChange)
	return m
}

// onChange records the latest persisted change for display.
func (m *Model) onChange(ev domain.ChangeEvent) {
	m.err = nil
	m.message = fmt.Sprintf("%s: %s", ev.Kind, ev.FocusName)
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.mode == ModeRename {
			return m.updateRename(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Add):
		_, err := m.tree.AddTask(m.defaultName)
		m.setErr(err)
	case key.Matches(msg, m.keys.Complete):
		_, err := m.tree.CompleteTask()
		m.setErr(err)
	case key.Matches(msg, m.keys.Reset):
		m.setErr(m.tree.ResetToRoot())
	case key.Matches(msg, m.keys.Rename):
		if m.tree.Focus().IsRoot() {
			m.setErr(domain.ErrRootImmutable)
			return m, nil
		}
		m.mode = ModeRename
		m.input.SetValue(m.tree.Focus().Name)
		m.input.CursorEnd()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.exitRename()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		name := strings.TrimSpace(m.input.Value())
		// An empty input leaves the name unchanged.
		if name != "" {
			m.setErr(m.tree.RenameTask(name))
		}
		m.exitRename()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) exitRename() {
	m.mode = ModeNormal
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) setErr(err error) {
	if err == nil {
		return
	}
	m.message = ""
	m.err = err
}

// View renders the focus bar.
func (m *Model) View() string {
	var b strings.Builder

	if m.mode == ModeRename {
		b.WriteString(m.styles.Input.Render(m.input.View()))
	} else {
		b.WriteString(m.styles.Focus.Render(m.tree.Focus().Name))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Path.Render(domain.FormatPath(m.tree.FocusPath())))

	switch {
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(errorText(m.err)))
	case m.message != "":
		b.WriteString("\n")
		b.WriteString(m.styles.Message.Render(m.message))
	}

	bar := m.styles.Bar.Render(b.String())
	return bar + "\n" + m.help.View(m.keys)
}

func errorText(err error) string {
	if domain.IsRefusal(err) && !errors.Is(err, domain.ErrNotLoaded) {
		return "Nothing changed: " + err.Error()
	}
	return "Error: " + err.Error()
}
