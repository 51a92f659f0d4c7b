package host

import (
	"io"

	"github.com/pauloappbr/gojinn-sdk/hostfuncs"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithBackends configures the capabilities exposed to guests.
func WithBackends(backends hostfuncs.Backends) Option {
	return func(e *Executor) {
		e.backends = backends
	}
}

// WithHostModuleName sets the import module name guests link against (default: "gojinn").
func WithHostModuleName(name string) Option {
	return func(e *Executor) {
		e.hostModule = name
	}
}

// WithStderr forwards guest stderr to w. By default it is discarded.
func WithStderr(w io.Writer) Option {
	return func(e *Executor) {
		e.stderr = w
	}
}

// WithModuleNamePrefix sets the prefix of generated guest instance names.
func WithModuleNamePrefix(prefix string) Option {
	return func(e *Executor) {
		e.namePrefix = prefix
	}
}
