package hostfuncs

import (
	"context"
)

// HostContext wraps a standard context.Context with the identity of the
// host function call in progress.
type HostContext interface {
	context.Context

	// FunctionName returns the name of the host import being invoked.
	FunctionName() string

	// GuestName returns the name of the module instance that made the call.
	GuestName() string
}

// hostContext is the concrete implementation of HostContext.
type hostContext struct {
	context.Context
	funcName  string
	guestName string
}

// NewHostContext creates a new HostContext wrapping the given context.
func NewHostContext(ctx context.Context, guestName, funcName string) HostContext {
	return &hostContext{
		Context:   ctx,
		funcName:  funcName,
		guestName: guestName,
	}
}

// FunctionName returns the name of the host import being invoked.
func (c *hostContext) FunctionName() string {
	return c.funcName
}

// GuestName returns the name of the calling module instance.
func (c *hostContext) GuestName() string {
	return c.guestName
}

// callAttrs returns slog attributes identifying the call, if ctx carries them.
func callAttrs(ctx context.Context) []any {
	hc, ok := ctx.(HostContext)
	if !ok {
		return nil
	}
	attrs := make([]any, 0, 4)
	if hc.GuestName() != "" {
		attrs = append(attrs, "guest", hc.GuestName())
	}
	if hc.FunctionName() != "" {
		attrs = append(attrs, "function", hc.FunctionName())
	}
	return attrs
}
