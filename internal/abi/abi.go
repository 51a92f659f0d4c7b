// Package abi holds the marshalling primitives used at the guest/host boundary.
//
// Guest data crosses into the host as (address, length) pairs pointing into
// linear memory. Variable-length host output comes back through a transfer
// buffer: a call-local byte slice whose address and capacity are handed to the
// host, which reports how many bytes it wrote. A reported length larger than
// the buffer capacity means the value is absent; it is never read as a
// truncated value.
package abi

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	// QueryBufferSize is the transfer buffer capacity for database and AI responses.
	QueryBufferSize = 64 * 1024

	// KVBufferSize is the transfer buffer capacity for key/value reads.
	KVBufferSize = 4 * 1024
)

// NewTransferBuffer allocates a zeroed transfer buffer of the given capacity.
func NewTransferBuffer(capacity int) []byte {
	if capacity <= 0 {
		return nil
	}
	return make([]byte, capacity)
}

// Slice returns the prefix of buf the host reported as written.
// It returns false when written exceeds the capacity of buf.
func Slice(buf []byte, written uint64) ([]byte, bool) {
	if written > uint64(len(buf)) {
		return nil, false
	}
	return buf[:written], true
}

// Decode returns the text the host wrote into buf, or false when the reported
// length is out of range for the buffer.
func Decode(buf []byte, written uint64) (string, bool) {
	b, ok := Slice(buf, written)
	if !ok {
		return "", false
	}
	return DecodeText(b), true
}

// DecodeText converts host output to a string, replacing invalid UTF-8
// sequences with U+FFFD.
func DecodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	// The UTF-8 decoder substitutes U+FFFD and does not fail.
	out, _ := unicode.UTF8.NewDecoder().Bytes(b)
	return string(out)
}
