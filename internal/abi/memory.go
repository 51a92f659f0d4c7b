//go:build wasip1

package abi

import "unsafe"

// StringPtr returns the linear-memory address and length of s.
// The host only reads the range for the duration of the call; nothing is copied.
func StringPtr(s string) (ptr, length uint32) {
	if len(s) == 0 {
		return 0, 0
	}
	// WASM linear memory: addresses fit in 32 bits.
	//nolint:gosec // G103: Valid unsafe.Pointer use for WASM linear memory access
	return uint32(uintptr(unsafe.Pointer(unsafe.StringData(s)))), uint32(len(s))
}

// BufferPtr returns the linear-memory address and capacity of a transfer buffer.
func BufferPtr(b []byte) (ptr, capacity uint32) {
	if len(b) == 0 {
		return 0, 0
	}
	//nolint:gosec // G103: Valid unsafe.Pointer use for WASM linear memory access
	return uint32(uintptr(unsafe.Pointer(&b[0]))), uint32(len(b))
}
