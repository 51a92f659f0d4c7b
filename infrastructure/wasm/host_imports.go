//go:build wasip1

// Package wasm provides the adapter between the SDK capability ports and the
// functions imported from the gojinn host.
package wasm

// All imports live in the "gojinn" module. Addresses and lengths are offsets
// into this module's linear memory.

//go:wasmimport gojinn host_log
//nolint:revive // intentional snake_case to match WASM import convention
func host_log(level, ptr, length uint32)

//go:wasmimport gojinn host_db_query
//nolint:revive // intentional snake_case to match WASM import convention
func host_db_query(qPtr, qLen, outPtr, outMax uint32) uint32

//go:wasmimport gojinn host_kv_set
//nolint:revive // intentional snake_case to match WASM import convention
func host_kv_set(kPtr, kLen, vPtr, vLen uint32)

//go:wasmimport gojinn host_kv_get
//nolint:revive // intentional snake_case to match WASM import convention
func host_kv_get(kPtr, kLen, outPtr, outMax uint32) uint64

//go:wasmimport gojinn host_ask_ai
//nolint:revive // intentional snake_case to match WASM import convention
func host_ask_ai(pPtr, pLen, outPtr, outMax uint32) uint64

//go:wasmimport gojinn host_mutex_lock
//nolint:revive // intentional snake_case to match WASM import convention
func host_mutex_lock(kPtr, kLen, ttlSeconds uint32) uint32

//go:wasmimport gojinn host_mutex_unlock
//nolint:revive // intentional snake_case to match WASM import convention
func host_mutex_unlock(kPtr, kLen uint32) uint32

//go:wasmimport gojinn host_enqueue
//nolint:revive // intentional snake_case to match WASM import convention
func host_enqueue(nPtr, nLen, pPtr, pLen uint32) uint32
