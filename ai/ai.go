// Package ai asks the gojinn host's model for completions.
package ai

import (
	"github.com/pauloappbr/gojinn-sdk/domain/ports"
	"github.com/pauloappbr/gojinn-sdk/infrastructure/wasm"
	"github.com/pauloappbr/gojinn-sdk/internal/abi"
)

// ErrorText is returned by Ask when the host produced no completion.
//
// It is plain text: a model that genuinely answers "AI Error" cannot be told
// apart from a failed call. The host protocol has no separate error signal.
const ErrorText = "AI Error"

// Client sends prompts through a ports.AIHost.
type Client struct {
	host ports.AIHost
}

// New creates a Client for host.
func New(host ports.AIHost) *Client {
	return &Client{host: host}
}

// Ask returns the completion for prompt, or ErrorText when the host wrote
// nothing or reported more than the 64KiB transfer buffer holds.
func (c *Client) Ask(prompt string) string {
	buf := abi.NewTransferBuffer(abi.QueryBufferSize)

	written := c.host.AskAI(prompt, buf)
	if written == 0 {
		return ErrorText
	}
	text, ok := abi.Decode(buf, written)
	if !ok {
		return ErrorText
	}
	return text
}

// IsErrorText reports whether s equals ErrorText. A true result does not prove
// the call failed; see ErrorText.
func IsErrorText(s string) bool {
	return s == ErrorText
}

var std = New(wasm.NewHost())

// Ask sends prompt to the default host.
func Ask(prompt string) string {
	return std.Ask(prompt)
}
