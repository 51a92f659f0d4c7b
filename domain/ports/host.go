package ports

// Log severity levels understood by the host's log import.
const (
	LogLevelDebug uint32 = 0
	LogLevelInfo  uint32 = 1
	LogLevelWarn  uint32 = 2
	LogLevelError uint32 = 3
)

// LogHost forwards a message to the host logger. Fire and forget.
type LogHost interface {
	Log(level uint32, message string)
}

// QueryHost runs a query on the host and writes the JSON-encoded result set
// into out. It returns the number of bytes written; zero means the query
// failed or produced no output.
type QueryHost interface {
	DBQuery(sql string, out []byte) uint32
}

// KVHost reads and writes the host key/value store.
type KVHost interface {
	KVSet(key, value string)

	// KVGet writes the value for key into out and returns the number of bytes
	// written. A result larger than len(out) means the value is missing or
	// does not fit; out must not be read in that case.
	KVGet(key string, out []byte) uint64
}

// AIHost asks the host model for a completion of prompt, written into out.
// Zero bytes written means the completion failed.
type AIHost interface {
	AskAI(prompt string, out []byte) uint64
}

// MutexHost manages host-side named locks. Both calls return 1 on success.
type MutexHost interface {
	MutexLock(key string, ttlSeconds uint32) uint32
	MutexUnlock(key string) uint32
}

// QueueHost submits a payload for asynchronous execution by target.
// It returns 0 when the host accepted the job.
type QueueHost interface {
	Enqueue(target, payload string) uint32
}

// Host is the full set of capabilities imported from the gojinn runtime.
type Host interface {
	LogHost
	QueryHost
	KVHost
	AIHost
	MutexHost
	QueueHost
}
