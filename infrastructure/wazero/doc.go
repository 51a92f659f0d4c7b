// Package wazero provides adapters for registering gojinn host functions with the wazero runtime.
//
// This package bridges the pure Go implementations in hostfuncs with the wazero
// WebAssembly runtime. It handles:
//
//   - Decoding i32 pointer and length arguments from the wazero stack
//   - Resolving the calling module's linear memory
//   - Tagging each call with the guest module name and import name
//   - Registering the eight imports with the wazero host module builder
//
// # Basic Usage
//
//	runtime := wazero.NewRuntime(ctx)
//
//	err := wazero.RegisterWithRuntime(ctx, runtime, hostfuncs.Backends{
//	    Logger: hostfuncs.SlogLogger{},
//	    KV:     hostfuncs.NewMemoryKV(nil),
//	    Locker: hostfuncs.NewMemoryLocker(),
//	})
//
// Guests compiled against the SDK import module "gojinn"; use WithModuleName
// only when embedding under a different name.
package wazero
