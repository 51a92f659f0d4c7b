//go:build wasip1

package wasm

import (
	"runtime"

	"github.com/pauloappbr/gojinn-sdk/domain/ports"
	"github.com/pauloappbr/gojinn-sdk/internal/abi"
)

// Compile-time interface compliance check
var _ ports.Host = (*Host)(nil)

// Host implements ports.Host by calling the gojinn imports directly.
type Host struct{}

// NewHost returns the host adapter for the running module.
func NewHost() *Host {
	return &Host{}
}

// Log implements ports.LogHost.
func (h *Host) Log(level uint32, message string) {
	ptr, length := abi.StringPtr(message)
	host_log(level, ptr, length)
	runtime.KeepAlive(message)
}

// DBQuery implements ports.QueryHost.
func (h *Host) DBQuery(sql string, out []byte) uint32 {
	qPtr, qLen := abi.StringPtr(sql)
	outPtr, outMax := abi.BufferPtr(out)
	written := host_db_query(qPtr, qLen, outPtr, outMax)
	runtime.KeepAlive(sql)
	runtime.KeepAlive(out)
	return written
}

// KVSet implements ports.KVHost.
func (h *Host) KVSet(key, value string) {
	kPtr, kLen := abi.StringPtr(key)
	vPtr, vLen := abi.StringPtr(value)
	host_kv_set(kPtr, kLen, vPtr, vLen)
	runtime.KeepAlive(key)
	runtime.KeepAlive(value)
}

// KVGet implements ports.KVHost.
func (h *Host) KVGet(key string, out []byte) uint64 {
	kPtr, kLen := abi.StringPtr(key)
	outPtr, outMax := abi.BufferPtr(out)
	written := host_kv_get(kPtr, kLen, outPtr, outMax)
	runtime.KeepAlive(key)
	runtime.KeepAlive(out)
	return written
}

// AskAI implements ports.AIHost.
func (h *Host) AskAI(prompt string, out []byte) uint64 {
	pPtr, pLen := abi.StringPtr(prompt)
	outPtr, outMax := abi.BufferPtr(out)
	written := host_ask_ai(pPtr, pLen, outPtr, outMax)
	runtime.KeepAlive(prompt)
	runtime.KeepAlive(out)
	return written
}

// MutexLock implements ports.MutexHost.
func (h *Host) MutexLock(key string, ttlSeconds uint32) uint32 {
	kPtr, kLen := abi.StringPtr(key)
	ok := host_mutex_lock(kPtr, kLen, ttlSeconds)
	runtime.KeepAlive(key)
	return ok
}

// MutexUnlock implements ports.MutexHost.
func (h *Host) MutexUnlock(key string) uint32 {
	kPtr, kLen := abi.StringPtr(key)
	ok := host_mutex_unlock(kPtr, kLen)
	runtime.KeepAlive(key)
	return ok
}

// Enqueue implements ports.QueueHost.
func (h *Host) Enqueue(target, payload string) uint32 {
	nPtr, nLen := abi.StringPtr(target)
	pPtr, pLen := abi.StringPtr(payload)
	code := host_enqueue(nPtr, nLen, pPtr, pLen)
	runtime.KeepAlive(target)
	runtime.KeepAlive(payload)
	return code
}
