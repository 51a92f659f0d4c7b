// Package hostfuncs provides pure Go implementations of the gojinn host imports.
// These implementations have NO WASM runtime dependencies (no wazero/wasmtime):
// they operate on a Memory interface and delegate every capability to
// caller-supplied Backends.
//
// The package exists to run guests locally and to test the boundary protocol
// from the host side. The in-memory backends are fixtures, not a database,
// store, or model.
//
// # Write rules
//
//   - host_db_query: the JSON result set is truncated to the output capacity
//     and the truncated length is returned; 0 means no output. A backend
//     error is reported inside the result set as [{"error": "..."}].
//   - host_kv_get: a value longer than the output capacity is not written and
//     its real length is returned; a missing key returns capacity+1.
//   - host_ask_ai: 0 means the completion failed; longer completions are
//     truncated to the output capacity.
//   - host_mutex_lock / host_mutex_unlock: 1 on success, 0 otherwise.
//   - host_enqueue: 0 when the job was accepted, 1 otherwise.
package hostfuncs
