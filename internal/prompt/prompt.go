// Package prompt implements the interactive chooser collaborator using huh
// terminal forms.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/l3aro/go-python-imports/pkg/importer"
)

// manualEntry is the select option that switches to free-form input.
const manualEntry = "(type manually)"

// Chooser prompts on the terminal. It implements importer.Chooser.
type Chooser struct{}

// New creates a terminal Chooser.
func New() *Chooser {
	return &Chooser{}
}

// Choose presents options and returns the user's pick. With one option or
// none it shows a free-form input pre-seeded with the option, so typed-in
// values not present in the list are accepted. Aborting the form (esc or
// ctrl-c) yields a cancelled choice.
func (c *Chooser) Choose(prompt string, options []string) importer.Choice {
	if len(options) <= 1 {
		seed := ""
		if len(options) == 1 {
			seed = options[0]
		}
		return runInput(prompt, seed)
	}

	var picked string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(prompt).
				Options(huh.NewOptions(append(append([]string{}, options...), manualEntry)...)...).
				Value(&picked),
		),
	)
	if err := form.Run(); err != nil {
		return cancelOn(err)
	}
	if picked == manualEntry {
		return runInput(prompt, "")
	}
	return importer.Selected(picked)
}

func runInput(prompt, seed string) importer.Choice {
	value := seed
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(prompt).
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return cancelOn(err)
	}
	return importer.Selected(value)
}

func cancelOn(err error) importer.Choice {
	if errors.Is(err, huh.ErrUserAborted) {
		return importer.Cancelled
	}
	// Any other form failure also aborts without mutating the buffer.
	return importer.Cancelled
}
