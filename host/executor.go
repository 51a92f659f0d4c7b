package host

import (
	"bytes"
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	sdk "github.com/pauloappbr/gojinn-sdk"
	"github.com/pauloappbr/gojinn-sdk/application/validation"
	"github.com/pauloappbr/gojinn-sdk/domain/errors"
	"github.com/pauloappbr/gojinn-sdk/hostfuncs"
	adapter "github.com/pauloappbr/gojinn-sdk/infrastructure/wazero"
)

// Executor runs guest modules, one request per instantiation.
// It is safe for concurrent use.
type Executor struct {
	runtime    wazero.Runtime
	validator  *validation.EnvelopeValidator
	backends   hostfuncs.Backends
	stderr     io.Writer
	hostModule string
	namePrefix string
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{
		stderr:     io.Discard,
		hostModule: adapter.DefaultModuleName,
		namePrefix: "guest",
	}
	for _, opt := range opts {
		opt(e)
	}

	v, err := validation.NewEnvelopeValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to build envelope validator: %w", err)
	}
	e.validator = v

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := adapter.RegisterWithRuntime(ctx, rt, e.backends, adapter.WithModuleName(e.hostModule)); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// Close releases resources held by the executor.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Run instantiates wasmBytes with req on stdin and returns the response the
// guest wrote to stdout.
//
// A guest that cannot be compiled, traps, or exits non-zero yields an
// *errors.GuestError. Output that is not a valid response envelope yields an
// *errors.MalformedResponseError.
func (e *Executor) Run(ctx context.Context, wasmBytes []byte, req sdk.Request) (sdk.Response, error) {
	input, err := json.Marshal(req)
	if err != nil {
		return sdk.Response{}, fmt.Errorf("failed to encode request: %w", err)
	}

	stdout, err := e.RunRaw(ctx, wasmBytes, input)
	if err != nil {
		return sdk.Response{}, err
	}

	if res := e.validator.ValidateResponse(stdout); !res.Valid {
		msgs := make([]string, 0, len(res.Errors))
		for _, ve := range res.Errors {
			msgs = append(msgs, ve.Field+": "+ve.Message)
		}
		return sdk.Response{}, &errors.MalformedResponseError{
			Operation: "guest",
			Err:       stdErrors.New(strings.Join(msgs, "; ")),
		}
	}

	var resp sdk.Response
	if err := json.Unmarshal(stdout, &resp); err != nil {
		return sdk.Response{}, &errors.MalformedResponseError{Operation: "guest", Err: err}
	}
	return resp, nil
}

// RunRaw instantiates wasmBytes with stdin as standard input and returns
// everything the guest wrote to standard output.
func (e *Executor) RunRaw(ctx context.Context, wasmBytes, stdin []byte) ([]byte, error) {
	name := e.namePrefix + "-" + uuid.NewString()

	compiled, err := e.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, &errors.GuestError{Module: name, Err: err}
	}
	defer compiled.Close(ctx)

	var stdout bytes.Buffer
	cfg := wazero.NewModuleConfig().
		WithName(name).
		WithArgs(name).
		WithStdin(bytes.NewReader(stdin)).
		WithStdout(&stdout).
		WithStderr(e.stderr).
		WithSysWalltime().
		WithSysNanotime()

	slog.DebugContext(ctx, "host: running guest", "module", name, "input_bytes", len(stdin))

	mod, err := e.runtime.InstantiateModule(ctx, compiled, cfg)
	if err != nil {
		var exitErr *sys.ExitError
		if !stdErrors.As(err, &exitErr) {
			return nil, &errors.GuestError{Module: name, Err: err}
		}
		if exitErr.ExitCode() != 0 {
			return nil, &errors.GuestError{Module: name, ExitCode: exitErr.ExitCode(), Err: err}
		}
	}
	if mod != nil {
		defer mod.Close(ctx)
	}

	slog.DebugContext(ctx, "host: guest finished", "module", name, "output_bytes", stdout.Len())
	return stdout.Bytes(), nil
}
