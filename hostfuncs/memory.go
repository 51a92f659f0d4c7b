package hostfuncs

import (
	"context"
	"log/slog"
)

// DefaultMaxRequestSize limits how many bytes the host reads from guest memory
// for a single argument (1MB).
// This prevents malicious WASM modules from triggering OOM by claiming huge request sizes.
const DefaultMaxRequestSize = 1 * 1024 * 1024

// Memory is the view of guest linear memory the host functions need.
// wazero's api.Memory satisfies it.
type Memory interface {
	Read(offset, byteCount uint32) ([]byte, bool)
	Write(offset uint32, v []byte) bool
}

// readArg copies an argument out of guest memory.
func readArg(ctx context.Context, mem Memory, name string, ptr, length uint32) ([]byte, bool) {
	if length == 0 {
		return nil, true
	}
	if length > DefaultMaxRequestSize {
		slog.ErrorContext(ctx, "hostfuncs: argument exceeds maximum size",
			"function", name, "size", length, "max", DefaultMaxRequestSize)
		return nil, false
	}
	data, ok := mem.Read(ptr, length)
	if !ok {
		slog.ErrorContext(ctx, "hostfuncs: failed to read argument from guest memory",
			"function", name, "ptr", ptr, "len", length)
		return nil, false
	}
	out := make([]byte, length)
	copy(out, data)
	return out, true
}

func writeOut(ctx context.Context, mem Memory, name string, ptr uint32, data []byte) bool {
	if len(data) == 0 {
		return true
	}
	if !mem.Write(ptr, data) {
		slog.ErrorContext(ctx, "hostfuncs: failed to write output to guest memory",
			"function", name, "ptr", ptr, "len", len(data))
		return false
	}
	return true
}

// HostLog implements host_log(level, ptr, len).
func (f *Functions) HostLog(ctx context.Context, mem Memory, level, ptr, length uint32) {
	defer recoverBackend(ctx, "host_log")

	msg, ok := readArg(ctx, mem, "host_log", ptr, length)
	if !ok {
		return
	}
	f.Log(ctx, level, string(msg))
}

// HostDBQuery implements host_db_query(qPtr, qLen, outPtr, outMax) -> written.
func (f *Functions) HostDBQuery(ctx context.Context, mem Memory, qPtr, qLen, outPtr, outMax uint32) (written uint32) {
	defer recoverBackend(ctx, "host_db_query")

	sql, ok := readArg(ctx, mem, "host_db_query", qPtr, qLen)
	if !ok {
		return 0
	}
	data := f.Query(ctx, string(sql), outMax)
	if !writeOut(ctx, mem, "host_db_query", outPtr, data) {
		return 0
	}
	return uint32(len(data)) //nolint:gosec // G115: bounded by outMax
}

// HostKVSet implements host_kv_set(kPtr, kLen, vPtr, vLen).
func (f *Functions) HostKVSet(ctx context.Context, mem Memory, kPtr, kLen, vPtr, vLen uint32) {
	defer recoverBackend(ctx, "host_kv_set")

	key, ok := readArg(ctx, mem, "host_kv_set", kPtr, kLen)
	if !ok {
		return
	}
	value, ok := readArg(ctx, mem, "host_kv_set", vPtr, vLen)
	if !ok {
		return
	}
	f.SetValue(ctx, string(key), string(value))
}

// HostKVGet implements host_kv_get(kPtr, kLen, outPtr, outMax) -> written.
func (f *Functions) HostKVGet(ctx context.Context, mem Memory, kPtr, kLen, outPtr, outMax uint32) (reported uint64) {
	reported = KVMissing(outMax)
	defer recoverBackend(ctx, "host_kv_get")

	key, ok := readArg(ctx, mem, "host_kv_get", kPtr, kLen)
	if !ok {
		return reported
	}
	data, n := f.GetValue(ctx, string(key), outMax)
	if n > uint64(outMax) {
		return n
	}
	if !writeOut(ctx, mem, "host_kv_get", outPtr, data) {
		return reported
	}
	return n
}

// HostAskAI implements host_ask_ai(pPtr, pLen, outPtr, outMax) -> written.
func (f *Functions) HostAskAI(ctx context.Context, mem Memory, pPtr, pLen, outPtr, outMax uint32) (written uint64) {
	defer recoverBackend(ctx, "host_ask_ai")

	prompt, ok := readArg(ctx, mem, "host_ask_ai", pPtr, pLen)
	if !ok {
		return 0
	}
	data := f.Ask(ctx, string(prompt), outMax)
	if !writeOut(ctx, mem, "host_ask_ai", outPtr, data) {
		return 0
	}
	return uint64(len(data))
}

// HostMutexLock implements host_mutex_lock(kPtr, kLen, ttlSeconds) -> ok.
func (f *Functions) HostMutexLock(ctx context.Context, mem Memory, kPtr, kLen, ttlSeconds uint32) (result uint32) {
	defer recoverBackend(ctx, "host_mutex_lock")

	key, ok := readArg(ctx, mem, "host_mutex_lock", kPtr, kLen)
	if !ok {
		return LockFailed
	}
	return f.Lock(ctx, string(key), ttlSeconds)
}

// HostMutexUnlock implements host_mutex_unlock(kPtr, kLen) -> ok.
func (f *Functions) HostMutexUnlock(ctx context.Context, mem Memory, kPtr, kLen uint32) (result uint32) {
	defer recoverBackend(ctx, "host_mutex_unlock")

	key, ok := readArg(ctx, mem, "host_mutex_unlock", kPtr, kLen)
	if !ok {
		return LockFailed
	}
	return f.Unlock(ctx, string(key))
}

// HostEnqueue implements host_enqueue(nPtr, nLen, pPtr, pLen) -> code.
func (f *Functions) HostEnqueue(ctx context.Context, mem Memory, nPtr, nLen, pPtr, pLen uint32) (code uint32) {
	code = EnqueueRejected
	defer recoverBackend(ctx, "host_enqueue")

	target, ok := readArg(ctx, mem, "host_enqueue", nPtr, nLen)
	if !ok {
		return code
	}
	payload, ok := readArg(ctx, mem, "host_enqueue", pPtr, pLen)
	if !ok {
		return code
	}
	return f.Enqueue(ctx, string(target), payload)
}
