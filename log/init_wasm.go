//go:build wasip1

package log

import "log/slog"

// init configures the default slog handler to forward to the host.
func init() {
	slog.SetDefault(slog.New(NewHandler()))
}
