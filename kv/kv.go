// Package kv reads and writes the gojinn host key/value store.
package kv

import (
	"github.com/pauloappbr/gojinn-sdk/domain/ports"
	"github.com/pauloappbr/gojinn-sdk/infrastructure/wasm"
	"github.com/pauloappbr/gojinn-sdk/internal/abi"
)

// Store accesses the key/value capability of a host.
type Store struct {
	host ports.KVHost
}

// New creates a Store for host.
func New(host ports.KVHost) *Store {
	return &Store{host: host}
}

// Set stores value under key. The write is fire and forget.
func (s *Store) Set(key, value string) {
	s.host.KVSet(key, value)
}

// Get returns the value stored under key. It reports false when the key is
// missing or the value does not fit the 4KiB transfer buffer; a partial value
// is never returned. An empty value is found and returned as "".
func (s *Store) Get(key string) (string, bool) {
	buf := abi.NewTransferBuffer(abi.KVBufferSize)
	return abi.Decode(buf, s.host.KVGet(key, buf))
}

var std = New(wasm.NewHost())

// Set stores value under key on the default host.
func Set(key, value string) {
	std.Set(key, value)
}

// Get reads key from the default host.
func Get(key string) (string, bool) {
	return std.Get(key)
}
