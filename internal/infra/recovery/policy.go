// Package recovery provides policies for corrupted task tree snapshots.
package recovery

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/runoshun/focustree/internal/domain"
)

// ErrNonInteractive is returned by Prompt when stdin is not a terminal.
var ErrNonInteractive = errors.New("no interactive input available")

// Fixed returns a policy that always answers choice.
func Fixed(choice domain.RecoveryChoice) domain.RecoveryPolicy {
	return domain.RecoveryFunc(func(string, error) (domain.RecoveryChoice, error) {
		return choice, nil
	})
}

// Prompt asks the user through a select form.
type Prompt struct {
	in          *os.File
	out         io.Writer
	interactive func(fd uintptr) bool
	ask         func(path string, cause error) (domain.RecoveryChoice, error)
}

// NewPrompt creates a Prompt reading from in and drawing to out.
func NewPrompt(in *os.File, out io.Writer) *Prompt {
	p := &Prompt{
		in:          in,
		out:         out,
		interactive: isTerminal,
	}
	p.ask = p.runForm
	return p
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Decide shows the choice to the user. Without a terminal it returns
// ErrNonInteractive so the caller falls back to its default.
func (p *Prompt) Decide(path string, cause error) (domain.RecoveryChoice, error) {
	if p.in == nil || !p.interactive(p.in.Fd()) {
		return "", ErrNonInteractive
	}
	return p.ask(path, cause)
}

func (p *Prompt) runForm(path string, cause error) (domain.RecoveryChoice, error) {
	choice := domain.RecoveryRecreate
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.RecoveryChoice]().
				Title("The task file is not in the expected format").
				Description(fmt.Sprintf("%s\n%v", path, cause)).
				Options(
					huh.NewOption("Recreate it (start a fresh tree)", domain.RecoveryRecreate),
					huh.NewOption("Leave it as is and inspect it manually", domain.RecoveryInspect),
				).
				Value(&choice),
		),
	).WithInput(p.in).WithOutput(p.out)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("recovery prompt: %w", err)
	}
	return choice, nil
}

// FromConfig builds the policy named by a [recovery].policy value.
// Unknown names fall back to the prompt.
func FromConfig(policy string, in *os.File, out io.Writer) domain.RecoveryPolicy {
	switch policy {
	case domain.RecoveryPolicyRecreate:
		return Fixed(domain.RecoveryRecreate)
	case domain.RecoveryPolicyInspect:
		return Fixed(domain.RecoveryInspect)
	default:
		return NewPrompt(in, out)
	}
}
