package hostfuncs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// SlogLogger forwards guest log lines to a slog.Logger.
type SlogLogger struct {
	Logger *slog.Logger
}

// Log implements Logger.
func (l SlogLogger) Log(ctx context.Context, level uint32, message string) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(ctx, slogLevel(level), message, append([]any{"source", "guest"}, callAttrs(ctx)...)...)
}

func slogLevel(level uint32) slog.Level {
	switch {
	case level == 0:
		return slog.LevelDebug
	case level == 1:
		return slog.LevelInfo
	case level == 2:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// MemoryKV is a map-backed KeyValue.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates a MemoryKV seeded with values.
func NewMemoryKV(seed map[string]string) *MemoryKV {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MemoryKV{values: values}
}

// Get implements KeyValue.
func (m *MemoryKV) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set implements KeyValue.
func (m *MemoryKV) Set(_ context.Context, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Snapshot returns a copy of the stored values.
func (m *MemoryKV) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// QueryFixture is the canned answer for one SQL text.
// Exactly one of Rows, Error, or Raw is used, in that order of precedence:
// Error, Raw, Rows.
type QueryFixture struct {
	Rows  []map[string]any
	Error string
	Raw   []byte
}

// FixtureDatabase answers queries from a fixed table keyed by SQL text.
// Unknown queries produce no output.
type FixtureDatabase struct {
	mu       sync.RWMutex
	fixtures map[string]QueryFixture
}

// NewFixtureDatabase creates a FixtureDatabase.
func NewFixtureDatabase(fixtures map[string]QueryFixture) *FixtureDatabase {
	db := &FixtureDatabase{fixtures: make(map[string]QueryFixture, len(fixtures))}
	for sql, fx := range fixtures {
		db.fixtures[sql] = fx
	}
	return db
}

// Add registers or replaces the fixture for sql.
func (d *FixtureDatabase) Add(sql string, fx QueryFixture) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fixtures[sql] = fx
}

// Query implements Database.
func (d *FixtureDatabase) Query(_ context.Context, sql string) ([]byte, error) {
	d.mu.RLock()
	fx, ok := d.fixtures[sql]
	d.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	switch {
	case fx.Error != "":
		return nil, errors.New(fx.Error)
	case fx.Raw != nil:
		return fx.Raw, nil
	}

	rows := fx.Rows
	if rows == nil {
		rows = []map[string]any{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fixture rows: %w", err)
	}
	return data, nil
}

// ErrNoCompletion is returned by FixtureAI for prompts it has no answer for.
var ErrNoCompletion = errors.New("no completion available")

// FixtureAI answers prompts from a fixed table, falling back to Default.
// With Echo set, prompts without an answer are answered with themselves.
type FixtureAI struct {
	Answers map[string]string
	Default string
	Echo    bool
}

// Complete implements Completer.
func (a *FixtureAI) Complete(_ context.Context, prompt string) (string, error) {
	if answer, ok := a.Answers[prompt]; ok {
		return answer, nil
	}
	if a.Default != "" {
		return a.Default, nil
	}
	if a.Echo {
		return prompt, nil
	}
	return "", ErrNoCompletion
}

// MemoryLocker is an in-process Locker with expiring locks.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]time.Time // zero time: no expiry
	now   func() time.Time
}

// NewMemoryLocker creates an empty MemoryLocker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		locks: make(map[string]time.Time),
		now:   time.Now,
	}
}

// TryLock implements Locker.
func (l *MemoryLocker) TryLock(_ context.Context, key string, ttl time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if expiry, held := l.locks[key]; held && (expiry.IsZero() || now.Before(expiry)) {
		return false
	}

	var expiry time.Time
	if ttl > 0 {
		expiry = now.Add(ttl)
	}
	l.locks[key] = expiry
	return true
}

// Unlock implements Locker. An expired lock is cleared but reported as not held.
func (l *MemoryLocker) Unlock(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	expiry, held := l.locks[key]
	if !held {
		return false
	}
	delete(l.locks, key)
	return expiry.IsZero() || l.now().Before(expiry)
}

// Job is a payload accepted by MemoryQueue.
type Job struct {
	Target  string
	Payload []byte
}

// MemoryQueue records enqueued jobs without running them.
type MemoryQueue struct {
	mu   sync.Mutex
	jobs []Job
}

// Enqueue implements Queue.
func (q *MemoryQueue) Enqueue(_ context.Context, target string, payload []byte) error {
	if target == "" {
		return errors.New("empty job target")
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, Job{Target: target, Payload: append([]byte(nil), payload...)})
	return nil
}

// Jobs returns the accepted jobs in order.
func (q *MemoryQueue) Jobs() []Job {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Job(nil), q.jobs...)
}
