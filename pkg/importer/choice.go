package importer

import "errors"

// ErrCancelled is returned by the perform flows when the user cancels a
// prompt. The buffer is guaranteed untouched in that case.
var ErrCancelled = errors.New("cancelled")

// Choice is the outcome of one interactive prompt: either a selected (or
// free-form typed) value, or a cancellation.
type Choice struct {
	value     string
	cancelled bool
}

// Selected wraps a chosen value.
func Selected(value string) Choice {
	return Choice{value: value}
}

// Cancelled is the aborted prompt outcome.
var Cancelled = Choice{cancelled: true}

// IsCancelled reports whether the prompt was aborted.
func (c Choice) IsCancelled() bool {
	return c.cancelled
}

// Value returns the chosen value. It is empty for a cancelled choice.
func (c Choice) Value() string {
	return c.value
}

// Lister enumerates the project's source files. The enumeration order is
// whatever the implementation provides; it determines suggestion order.
type Lister interface {
	ListProjectFiles() ([]string, error)
}

// Chooser presents options to the user and returns their pick. The returned
// value may be free-form text not present in options; an empty option list
// still prompts, so the user can type a module name verbatim.
type Chooser interface {
	Choose(prompt string, options []string) Choice
}
