// Package llm wraps the external generative-language service. Callers depend
// on the TextGenerator interface so tests can substitute a mock and count
// invocations.
package llm

import "context"

// TextGenerator is an interface for generating text from a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Closer is an interface for closing resources.
type Closer interface {
	Close() error
}
