package hostfuncs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
)

// Result codes shared by the lock and queue imports.
const (
	LockFailed   uint32 = 0
	LockAcquired uint32 = 1

	EnqueueAccepted uint32 = 0
	EnqueueRejected uint32 = 1
)

// KVMissing is the length reported by host_kv_get for a missing key.
func KVMissing(outMax uint32) uint64 {
	return uint64(outMax) + 1
}

// Functions implements the import semantics on top of Backends.
// The methods here work on Go values; memory.go adapts them to linear memory.
type Functions struct {
	backends Backends
}

// New creates Functions for the given backends.
func New(backends Backends) *Functions {
	return &Functions{backends: backends}
}

// Log forwards a guest log line to the Logger backend.
func (f *Functions) Log(ctx context.Context, level uint32, message string) {
	if f.backends.Logger == nil {
		return
	}
	f.backends.Logger.Log(ctx, level, message)
}

// Query runs sql and returns the bytes to write into an output buffer of
// capacity outMax. A nil result means nothing is written.
func (f *Functions) Query(ctx context.Context, sql string, outMax uint32) []byte {
	if f.backends.Database == nil {
		return nil
	}

	data, err := f.backends.Database.Query(ctx, sql)
	if err != nil {
		// gojinn convention: failures travel in the result set itself.
		data, err = json.Marshal([]map[string]string{{"error": err.Error()}})
		if err != nil {
			return nil
		}
	}
	return bounded(data, outMax)
}

// SetValue stores value under key.
func (f *Functions) SetValue(ctx context.Context, key, value string) {
	if f.backends.KV == nil {
		return
	}
	f.backends.KV.Set(ctx, key, value)
}

// GetValue looks up key. It returns the bytes to write and the length to report.
// When the reported length exceeds outMax nothing must be written.
func (f *Functions) GetValue(ctx context.Context, key string, outMax uint32) ([]byte, uint64) {
	if f.backends.KV == nil {
		return nil, KVMissing(outMax)
	}
	value, ok := f.backends.KV.Get(ctx, key)
	if !ok {
		return nil, KVMissing(outMax)
	}
	if uint64(len(value)) > uint64(outMax) {
		return nil, uint64(len(value))
	}
	return []byte(value), uint64(len(value))
}

// Ask returns the completion for prompt, truncated to outMax. A nil result
// reports failure.
func (f *Functions) Ask(ctx context.Context, prompt string, outMax uint32) []byte {
	if f.backends.AI == nil {
		return nil
	}
	answer, err := f.backends.AI.Complete(ctx, prompt)
	if err != nil {
		slog.WarnContext(ctx, "hostfuncs: completion failed", "error", err)
		return nil
	}
	return bounded([]byte(answer), outMax)
}

// Lock tries to take the named lock.
func (f *Functions) Lock(ctx context.Context, key string, ttlSeconds uint32) uint32 {
	if f.backends.Locker == nil {
		return LockFailed
	}
	if f.backends.Locker.TryLock(ctx, key, time.Duration(ttlSeconds)*time.Second) {
		return LockAcquired
	}
	return LockFailed
}

// Unlock releases the named lock.
func (f *Functions) Unlock(ctx context.Context, key string) uint32 {
	if f.backends.Locker == nil {
		return LockFailed
	}
	if f.backends.Locker.Unlock(ctx, key) {
		return LockAcquired
	}
	return LockFailed
}

// Enqueue submits a job to the Queue backend.
func (f *Functions) Enqueue(ctx context.Context, target string, payload []byte) uint32 {
	if f.backends.Queue == nil {
		return EnqueueRejected
	}
	if err := f.backends.Queue.Enqueue(ctx, target, payload); err != nil {
		slog.WarnContext(ctx, "hostfuncs: enqueue rejected", "target", target, "error", err)
		return EnqueueRejected
	}
	return EnqueueAccepted
}

// bounded truncates data to limit bytes using a BoundedBuffer.
func bounded(data []byte, limit uint32) []byte {
	if len(data) == 0 || limit == 0 {
		return nil
	}
	buf := NewBoundedBuffer(int(limit))
	_, _ = buf.Write(data)
	if buf.Truncated {
		slog.Debug("hostfuncs: output truncated", "size", len(data), "limit", limit)
	}
	return buf.Bytes()
}

// recoverBackend converts a backend panic into a logged failure.
func recoverBackend(ctx context.Context, name string) {
	if r := recover(); r != nil {
		slog.ErrorContext(ctx, "hostfuncs: backend panicked", "function", name, "panic", fmt.Sprint(r))
	}
}
