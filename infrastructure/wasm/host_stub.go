//go:build !wasip1

package wasm

import (
	"fmt"
	"os"

	"github.com/pauloappbr/gojinn-sdk/domain/ports"
)

// Compile-time interface compliance check
var _ ports.Host = (*Host)(nil)

// Host stub for native builds. It behaves like a host with no capabilities
// configured: queries and completions fail, keys are absent, locks and jobs
// are refused. Log lines go to stderr.
type Host struct{}

// NewHost returns the native stub host.
func NewHost() *Host {
	return &Host{}
}

func (h *Host) Log(level uint32, message string) {
	fmt.Fprintf(os.Stderr, "[HOST-STUB] level=%d msg=%q\n", level, message)
}

func (h *Host) DBQuery(sql string, out []byte) uint32 {
	return 0
}

func (h *Host) KVSet(key, value string) {}

func (h *Host) KVGet(key string, out []byte) uint64 {
	return uint64(len(out)) + 1
}

func (h *Host) AskAI(prompt string, out []byte) uint64 {
	return 0
}

func (h *Host) MutexLock(key string, ttlSeconds uint32) uint32 {
	return 0
}

func (h *Host) MutexUnlock(key string) uint32 {
	return 0
}

func (h *Host) Enqueue(target, payload string) uint32 {
	return 1
}
