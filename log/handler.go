package log

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pauloappbr/gojinn-sdk/domain/ports"
	"github.com/pauloappbr/gojinn-sdk/infrastructure/wasm"
)

// Handler implements slog.Handler by routing records through the host log import.
// Attributes are rendered as key=value pairs after the message.
type Handler struct {
	opts   handlerConfig
	attrs  []slog.Attr
	groups []string
}

// HandlerOption configures the Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	host  ports.LogHost
	level slog.Level
}

// defaultHandlerConfig returns the default configuration.
func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level: slog.LevelInfo,
	}
}

// WithLevel sets the minimum log level to report.
// Records below this level will be filtered on the guest side.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithHost sends records to host instead of the gojinn imports.
func WithHost(host ports.LogHost) HandlerOption {
	return func(c *handlerConfig) {
		c.host = host
	}
}

// NewHandler creates a new Handler with the given options.
func NewHandler(opts ...HandlerOption) *Handler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.host == nil {
		cfg.host = wasm.NewHost()
	}
	return &Handler{opts: cfg}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// Handle renders the record and sends it to the host.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	prefix := strings.Join(h.groups, ".")
	for _, attr := range h.attrs {
		writeAttr(&b, "", attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, prefix, attr)
		return true
	})

	h.opts.host.Log(hostLevel(record.Level), b.String())
	return nil
}

// WithAttrs returns a new Handler that includes the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	prefix := strings.Join(h.groups, ".")
	newHandler := h.clone()
	for _, attr := range attrs {
		if prefix != "" {
			attr.Key = prefix + "." + attr.Key
		}
		newHandler.attrs = append(newHandler.attrs, attr)
	}
	return newHandler
}

// WithGroup returns a new Handler that qualifies later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newHandler := h.clone()
	newHandler.groups = append(newHandler.groups, name)
	return newHandler
}

func (h *Handler) clone() *Handler {
	return &Handler{
		opts:   h.opts,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

// hostLevel maps slog levels onto the host's severity scale.
func hostLevel(level slog.Level) uint32 {
	switch {
	case level >= slog.LevelError:
		return ports.LogLevelError
	case level >= slog.LevelWarn:
		return ports.LogLevelWarn
	case level >= slog.LevelInfo:
		return ports.LogLevelInfo
	default:
		return ports.LogLevelDebug
	}
}

func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	}
	if attr.Value.Kind() == slog.KindGroup {
		for _, a := range attr.Value.Group() {
			writeAttr(b, key, a)
		}
		return
	}
	fmt.Fprintf(b, " %s=%s", key, quoteIfNeeded(attrValue(attr.Value)))
}
