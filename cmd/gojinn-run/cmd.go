package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	sdk "github.com/pauloappbr/gojinn-sdk"
	"github.com/pauloappbr/gojinn-sdk/application/schema"
	"github.com/pauloappbr/gojinn-sdk/host"
	"github.com/pauloappbr/gojinn-sdk/hostfuncs"
	"github.com/pauloappbr/gojinn-sdk/infrastructure/fixtures"
)

type runOptions struct {
	body     string
	method   string
	headers  []string
	fixtures string
	timeout  time.Duration
	verbose  bool
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "gojinn-run",
		Short:         "Run gojinn WASM functions locally.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(logger), newSchemaCmd())
	return root
}

func newRunCmd(logger *zap.Logger) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run module.wasm",
		Short: "Execute a function once and print its response envelope.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModule(cmd, logger, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.body, "body", "", "request body")
	cmd.Flags().StringVar(&opts.method, "method", "", "request method (omitted when empty)")
	cmd.Flags().StringArrayVar(&opts.headers, "header", nil, "request header as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.fixtures, "fixtures", "", "YAML file with kv, query and ai fixtures")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "execution timeout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show guest debug logs")
	return cmd
}

func runModule(cmd *cobra.Command, logger *zap.Logger, path string, opts *runOptions) error {
	req, err := buildRequest(opts)
	if err != nil {
		return err
	}

	wasmBytes, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the operator
	if err != nil {
		return fmt.Errorf("failed to read module: %w", err)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	guestLogger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	backends := hostfuncs.Backends{
		Logger:   hostfuncs.SlogLogger{Logger: guestLogger},
		Database: hostfuncs.NewFixtureDatabase(nil),
		KV:       hostfuncs.NewMemoryKV(nil),
		AI:       &hostfuncs.FixtureAI{},
		Locker:   hostfuncs.NewMemoryLocker(),
		Queue:    &hostfuncs.MemoryQueue{},
	}
	if opts.fixtures != "" {
		f, err := fixtures.Load(opts.fixtures)
		if err != nil {
			return err
		}
		backends = f.Backends(guestLogger)
		logger.Debug("loaded fixtures", zap.String("path", opts.fixtures), zap.Int("queries", len(f.Queries)))
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	exec, err := host.NewExecutor(ctx, host.WithBackends(backends), host.WithStderr(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer func() { _ = exec.Close(ctx) }()

	start := time.Now()
	resp, err := exec.Run(ctx, wasmBytes, req)
	if err != nil {
		return err
	}
	logger.Info("function completed",
		zap.String("module", path),
		zap.Uint16("status", resp.Status),
		zap.Duration("elapsed", time.Since(start)),
	)

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func buildRequest(opts *runOptions) (sdk.Request, error) {
	req := sdk.Request{Body: opts.body}
	if opts.method != "" {
		method := opts.method
		req.Method = &method
	}
	for _, h := range opts.headers {
		key, value, ok := strings.Cut(h, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return sdk.Request{}, fmt.Errorf("invalid header %q: want key=value", h)
		}
		if req.Headers == nil {
			req.Headers = make(map[string][]string)
		}
		key = strings.TrimSpace(key)
		req.Headers[key] = append(req.Headers[key], value)
	}
	return req, nil
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema request|response",
		Short:     "Print the JSON Schema of an envelope.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"request", "response"},
		RunE: func(cmd *cobra.Command, args []string) error {
			generate := schema.RequestSchema
			if args[0] == "response" {
				generate = schema.ResponseSchema
			}
			out, err := generate()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
