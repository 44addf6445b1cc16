package internal

import (
	"io"

	"github.com/starford/drafts/internal/draft"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	clock  draft.Clock
	stdout io.Writer
	stderr io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithClock overrides the clock used for the draft date.
func WithClock(clock draft.Clock) Option {
	return func(a *application) {
		a.clock = clock
	}
}

// WithStdout sets where the draft path is printed.
func WithStdout(w io.Writer) Option {
	return func(a *application) {
		a.stdout = w
	}
}

// WithStderr sets the log destination.
func WithStderr(w io.Writer) Option {
	return func(a *application) {
		a.stderr = w
	}
}
