// Package mutex takes named locks held by the gojinn host, shared by every
// instance of every function running on it.
package mutex

import (
	"github.com/pauloappbr/gojinn-sdk/domain/ports"
	"github.com/pauloappbr/gojinn-sdk/infrastructure/wasm"
)

const hostOK uint32 = 1

// Service accesses the lock capability of a host.
type Service struct {
	host ports.MutexHost
}

// New creates a Service for host.
func New(host ports.MutexHost) *Service {
	return &Service{host: host}
}

// TryLock attempts to take the lock named key. The host releases it after
// ttlSeconds even if Unlock is never called; 0 means no expiry.
func (s *Service) TryLock(key string, ttlSeconds uint32) bool {
	return s.host.MutexLock(key, ttlSeconds) == hostOK
}

// Unlock releases the lock named key. It reports false if the lock was not held.
func (s *Service) Unlock(key string) bool {
	return s.host.MutexUnlock(key) == hostOK
}

var std = New(wasm.NewHost())

// TryLock takes a lock on the default host.
func TryLock(key string, ttlSeconds uint32) bool {
	return std.TryLock(key, ttlSeconds)
}

// Unlock releases a lock on the default host.
func Unlock(key string) bool {
	return std.Unlock(key)
}
