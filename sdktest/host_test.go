package sdktest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloappbr/gojinn-sdk/internal/abi"
)

func TestHost_KV(t *testing.T) {
	h := NewHost(WithValue("seeded", "yes"))

	out := abi.NewTransferBuffer(abi.KVBufferSize)
	n := h.KVGet("seeded", out)
	assert.Equal(t, "yes", string(out[:n]))

	h.KVSet("k", "v")
	n = h.KVGet("k", out)
	assert.Equal(t, "v", string(out[:n]))

	assert.Greater(t, h.KVGet("missing", out), uint64(len(out)))
}

func TestHost_KVOversizedLeavesBufferUntouched(t *testing.T) {
	h := NewHost(WithValue("big", strings.Repeat("z", 5000)))

	out := abi.NewTransferBuffer(abi.KVBufferSize)
	n := h.KVGet("big", out)
	assert.Equal(t, uint64(5000), n)
	assert.Equal(t, make([]byte, abi.KVBufferSize), out)
}

func TestHost_DBQuery(t *testing.T) {
	h := NewHost(
		WithRows("SELECT 1", map[string]any{"one": 1}),
		WithQueryError("SELECT x", "boom"),
	)
	out := abi.NewTransferBuffer(abi.QueryBufferSize)

	n := h.DBQuery("SELECT 1", out)
	assert.JSONEq(t, `[{"one":1}]`, string(out[:n]))

	n = h.DBQuery("SELECT x", out)
	assert.JSONEq(t, `[{"error":"boom"}]`, string(out[:n]))

	assert.Zero(t, h.DBQuery("SELECT unknown", out))
}

func TestHost_AskAI(t *testing.T) {
	h := NewHost(WithCompletion("hi", "hello"))
	out := abi.NewTransferBuffer(abi.QueryBufferSize)

	n := h.AskAI("hi", out)
	assert.Equal(t, "hello", string(out[:n]))
	assert.Zero(t, h.AskAI("unknown", out))

	echo := NewHost(WithEchoCompletions())
	n = echo.AskAI("repeat me", out)
	assert.Equal(t, "repeat me", string(out[:n]))
}

func TestHost_LogsMutexQueue(t *testing.T) {
	h := NewHost()

	h.Log(1, "info line")
	h.Log(3, "error line")
	assert.Equal(t, []LogEntry{{Level: 1, Message: "info line"}, {Level: 3, Message: "error line"}}, h.Logs())

	assert.Equal(t, uint32(1), h.MutexLock("k", 5))
	assert.Equal(t, uint32(0), h.MutexLock("k", 5))
	assert.Equal(t, uint32(1), h.MutexUnlock("k"))

	assert.Equal(t, uint32(0), h.Enqueue("worker.wasm", "{}"))
	require.Len(t, h.Queue.Jobs(), 1)
}
