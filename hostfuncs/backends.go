package hostfuncs

import (
	"context"
	"time"
)

// Logger receives guest log lines.
type Logger interface {
	Log(ctx context.Context, level uint32, message string)
}

// Database executes a query and returns the result set encoded as a JSON array
// of objects. An empty result with a nil error means "no output".
type Database interface {
	Query(ctx context.Context, sql string) ([]byte, error)
}

// KeyValue is the store behind host_kv_get and host_kv_set.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// Completer answers AI prompts.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Locker provides named locks with an optional time to live.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) bool
	Unlock(ctx context.Context, key string) bool
}

// Queue accepts jobs for asynchronous execution.
type Queue interface {
	Enqueue(ctx context.Context, target string, payload []byte) error
}

// Backends bundles the capability implementations. A nil backend makes the
// corresponding import behave as unavailable.
type Backends struct {
	Logger   Logger
	Database Database
	KV       KeyValue
	AI       Completer
	Locker   Locker
	Queue    Queue
}
