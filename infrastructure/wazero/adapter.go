// Package wazero provides adapters for registering gojinn host functions with the wazero runtime.
package wazero

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/pauloappbr/gojinn-sdk/hostfuncs"
)

// DefaultModuleName is the import module name guests link against.
const DefaultModuleName = "gojinn"

// Host import names.
const (
	ImportLog         = "host_log"
	ImportDBQuery     = "host_db_query"
	ImportKVSet       = "host_kv_set"
	ImportKVGet       = "host_kv_get"
	ImportAskAI       = "host_ask_ai"
	ImportMutexLock   = "host_mutex_lock"
	ImportMutexUnlock = "host_mutex_unlock"
	ImportEnqueue     = "host_enqueue"
)

var (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
)

// AdapterConfig holds configuration for the wazero adapter.
type AdapterConfig struct {
	// ModuleName is the host module name (default: "gojinn").
	ModuleName string
}

// AdapterOption configures the adapter.
type AdapterOption func(*AdapterConfig)

// WithModuleName sets the host module name (default: "gojinn").
func WithModuleName(name string) AdapterOption {
	return func(c *AdapterConfig) {
		c.ModuleName = name
	}
}

// defaultAdapterConfig returns the default adapter configuration.
func defaultAdapterConfig() AdapterConfig {
	return AdapterConfig{
		ModuleName: DefaultModuleName,
	}
}

type hostImport struct {
	name    string
	fn      api.GoModuleFunc
	params  []api.ValueType
	results []api.ValueType
}

// adapter translates wazero stack frames into hostfuncs calls.
type adapter struct {
	fns *hostfuncs.Functions
}

// RegisterWithRuntime instantiates the host module (default: "gojinn")
// exporting every gojinn import, backed by the given backends.
//
// Example:
//
//	rt := wazero.NewRuntime(ctx)
//	err := wazero.RegisterWithRuntime(ctx, rt, hostfuncs.Backends{
//	    KV: hostfuncs.NewMemoryKV(nil),
//	})
func RegisterWithRuntime(ctx context.Context, runtime wazero.Runtime, backends hostfuncs.Backends, opts ...AdapterOption) error {
	cfg := defaultAdapterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &adapter{fns: hostfuncs.New(backends)}
	builder := runtime.NewHostModuleBuilder(cfg.ModuleName)
	for _, imp := range a.imports() {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(imp.fn, imp.params, imp.results).
			WithName(imp.name).
			Export(imp.name)
	}

	if _, err := builder.Instantiate(ctx); err != nil {
		return fmt.Errorf("failed to instantiate host module %s: %w", cfg.ModuleName, err)
	}
	return nil
}

func (a *adapter) imports() []hostImport {
	return []hostImport{
		{ImportLog, a.hostLog, []api.ValueType{i32, i32, i32}, nil},
		{ImportDBQuery, a.hostDBQuery, []api.ValueType{i32, i32, i32, i32}, []api.ValueType{i32}},
		{ImportKVSet, a.hostKVSet, []api.ValueType{i32, i32, i32, i32}, nil},
		{ImportKVGet, a.hostKVGet, []api.ValueType{i32, i32, i32, i32}, []api.ValueType{i64}},
		{ImportAskAI, a.hostAskAI, []api.ValueType{i32, i32, i32, i32}, []api.ValueType{i64}},
		{ImportMutexLock, a.hostMutexLock, []api.ValueType{i32, i32, i32}, []api.ValueType{i32}},
		{ImportMutexUnlock, a.hostMutexUnlock, []api.ValueType{i32, i32}, []api.ValueType{i32}},
		{ImportEnqueue, a.hostEnqueue, []api.ValueType{i32, i32, i32, i32}, []api.ValueType{i32}},
	}
}

// call resolves the caller's memory and identity. ok is false when the
// calling module exports no memory.
func call(ctx context.Context, mod api.Module, name string) (hostfuncs.HostContext, api.Memory, bool) {
	hctx := hostfuncs.NewHostContext(ctx, mod.Name(), name)
	mem := mod.Memory()
	if mem == nil {
		slog.ErrorContext(ctx, "wazero: guest module exports no memory", "function", name, "module", mod.Name())
		return hctx, nil, false
	}
	return hctx, mem, true
}

func u32(stack []uint64, i int) uint32 {
	return api.DecodeU32(stack[i])
}

func (a *adapter) hostLog(ctx context.Context, mod api.Module, stack []uint64) {
	hctx, mem, ok := call(ctx, mod, ImportLog)
	if !ok {
		return
	}
	a.fns.HostLog(hctx, mem, u32(stack, 0), u32(stack, 1), u32(stack, 2))
}

func (a *adapter) hostDBQuery(ctx context.Context, mod api.Module, stack []uint64) {
	hctx, mem, ok := call(ctx, mod, ImportDBQuery)
	if !ok {
		stack[0] = 0
		return
	}
	stack[0] = api.EncodeU32(a.fns.HostDBQuery(hctx, mem, u32(stack, 0), u32(stack, 1), u32(stack, 2), u32(stack, 3)))
}

func (a *adapter) hostKVSet(ctx context.Context, mod api.Module, stack []uint64) {
	hctx, mem, ok := call(ctx, mod, ImportKVSet)
	if !ok {
		return
	}
	a.fns.HostKVSet(hctx, mem, u32(stack, 0), u32(stack, 1), u32(stack, 2), u32(stack, 3))
}

func (a *adapter) hostKVGet(ctx context.Context, mod api.Module, stack []uint64) {
	outMax := u32(stack, 3)
	hctx, mem, ok := call(ctx, mod, ImportKVGet)
	if !ok {
		stack[0] = hostfuncs.KVMissing(outMax)
		return
	}
	stack[0] = a.fns.HostKVGet(hctx, mem, u32(stack, 0), u32(stack, 1), u32(stack, 2), outMax)
}

func (a *adapter) hostAskAI(ctx context.Context, mod api.Module, stack []uint64) {
	hctx, mem, ok := call(ctx, mod, ImportAskAI)
	if !ok {
		stack[0] = 0
		return
	}
	stack[0] = a.fns.HostAskAI(hctx, mem, u32(stack, 0), u32(stack, 1), u32(stack, 2), u32(stack, 3))
}

func (a *adapter) hostMutexLock(ctx context.Context, mod api.Module, stack []uint64) {
	hctx, mem, ok := call(ctx, mod, ImportMutexLock)
	if !ok {
		stack[0] = api.EncodeU32(hostfuncs.LockFailed)
		return
	}
	stack[0] = api.EncodeU32(a.fns.HostMutexLock(hctx, mem, u32(stack, 0), u32(stack, 1), u32(stack, 2)))
}

func (a *adapter) hostMutexUnlock(ctx context.Context, mod api.Module, stack []uint64) {
	hctx, mem, ok := call(ctx, mod, ImportMutexUnlock)
	if !ok {
		stack[0] = api.EncodeU32(hostfuncs.LockFailed)
		return
	}
	stack[0] = api.EncodeU32(a.fns.HostMutexUnlock(hctx, mem, u32(stack, 0), u32(stack, 1)))
}

func (a *adapter) hostEnqueue(ctx context.Context, mod api.Module, stack []uint64) {
	hctx, mem, ok := call(ctx, mod, ImportEnqueue)
	if !ok {
		stack[0] = api.EncodeU32(hostfuncs.EnqueueRejected)
		return
	}
	stack[0] = api.EncodeU32(a.fns.HostEnqueue(hctx, mem, u32(stack, 0), u32(stack, 1), u32(stack, 2), u32(stack, 3)))
}
