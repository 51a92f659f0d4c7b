// Package sdktest provides an in-process fake gojinn host for testing guest
// code natively. The fake applies the same write rules as the real host
// bindings (see hostfuncs) to the guest's transfer buffers.
package sdktest

import (
	"context"
	"sync"

	"github.com/pauloappbr/gojinn-sdk/domain/ports"
	"github.com/pauloappbr/gojinn-sdk/hostfuncs"
)

// Compile-time interface compliance check
var _ ports.Host = (*Host)(nil)

// LogEntry is a log line received by the fake host.
type LogEntry struct {
	Level   uint32
	Message string
}

// Host is a fake ports.Host.
type Host struct {
	fns *hostfuncs.Functions

	KV     *hostfuncs.MemoryKV
	DB     *hostfuncs.FixtureDatabase
	AI     *hostfuncs.FixtureAI
	Locker *hostfuncs.MemoryLocker
	Queue  *hostfuncs.MemoryQueue

	mu   sync.Mutex
	logs []LogEntry
}

type logRecorder struct{ h *Host }

func (r logRecorder) Log(_ context.Context, level uint32, message string) {
	r.h.mu.Lock()
	defer r.h.mu.Unlock()
	r.h.logs = append(r.h.logs, LogEntry{Level: level, Message: message})
}

// Option configures a fake Host.
type Option func(*Host)

// WithValue seeds the key/value store.
func WithValue(key, value string) Option {
	return func(h *Host) {
		h.KV.Set(context.Background(), key, value)
	}
}

// WithRows makes sql return rows.
func WithRows(sql string, rows ...map[string]any) Option {
	return func(h *Host) {
		if rows == nil {
			rows = []map[string]any{}
		}
		h.DB.Add(sql, hostfuncs.QueryFixture{Rows: rows})
	}
}

// WithQueryError makes sql fail with msg, reported the way the host reports
// database errors.
func WithQueryError(sql, msg string) Option {
	return func(h *Host) {
		h.DB.Add(sql, hostfuncs.QueryFixture{Error: msg})
	}
}

// WithRawQuery makes sql return raw bytes verbatim.
func WithRawQuery(sql string, raw []byte) Option {
	return func(h *Host) {
		h.DB.Add(sql, hostfuncs.QueryFixture{Raw: raw})
	}
}

// WithCompletion sets the answer for prompt.
func WithCompletion(prompt, answer string) Option {
	return func(h *Host) {
		h.AI.Answers[prompt] = answer
	}
}

// WithEchoCompletions answers every prompt without a fixture with the prompt itself.
func WithEchoCompletions() Option {
	return func(h *Host) {
		h.AI.Echo = true
	}
}

// NewHost creates a fake host. Unknown queries and prompts produce no output.
func NewHost(opts ...Option) *Host {
	h := &Host{
		KV:     hostfuncs.NewMemoryKV(nil),
		DB:     hostfuncs.NewFixtureDatabase(nil),
		AI:     &hostfuncs.FixtureAI{Answers: map[string]string{}},
		Locker: hostfuncs.NewMemoryLocker(),
		Queue:  &hostfuncs.MemoryQueue{},
	}
	h.fns = hostfuncs.New(hostfuncs.Backends{
		Logger:   logRecorder{h: h},
		Database: h.DB,
		KV:       h.KV,
		AI:       h.AI,
		Locker:   h.Locker,
		Queue:    h.Queue,
	})
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Logs returns the log lines received so far.
func (h *Host) Logs() []LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]LogEntry(nil), h.logs...)
}

// Log implements ports.LogHost.
func (h *Host) Log(level uint32, message string) {
	h.fns.Log(context.Background(), level, message)
}

// DBQuery implements ports.QueryHost.
func (h *Host) DBQuery(sql string, out []byte) uint32 {
	data := h.fns.Query(context.Background(), sql, capacity(out))
	return uint32(copy(out, data)) //nolint:gosec // G115: bounded by len(out)
}

// KVSet implements ports.KVHost.
func (h *Host) KVSet(key, value string) {
	h.fns.SetValue(context.Background(), key, value)
}

// KVGet implements ports.KVHost.
func (h *Host) KVGet(key string, out []byte) uint64 {
	data, n := h.fns.GetValue(context.Background(), key, capacity(out))
	if n <= uint64(len(out)) {
		copy(out, data)
	}
	return n
}

// AskAI implements ports.AIHost.
func (h *Host) AskAI(prompt string, out []byte) uint64 {
	data := h.fns.Ask(context.Background(), prompt, capacity(out))
	return uint64(copy(out, data))
}

// MutexLock implements ports.MutexHost.
func (h *Host) MutexLock(key string, ttlSeconds uint32) uint32 {
	return h.fns.Lock(context.Background(), key, ttlSeconds)
}

// MutexUnlock implements ports.MutexHost.
func (h *Host) MutexUnlock(key string) uint32 {
	return h.fns.Unlock(context.Background(), key)
}

// Enqueue implements ports.QueueHost.
func (h *Host) Enqueue(target, payload string) uint32 {
	return h.fns.Enqueue(context.Background(), target, []byte(payload))
}

func capacity(out []byte) uint32 {
	return uint32(len(out)) //nolint:gosec // G115: transfer buffers are far below 4GiB
}
