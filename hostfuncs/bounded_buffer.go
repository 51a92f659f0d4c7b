package hostfuncs

import (
	"bytes"
)

// BoundedBuffer is a bytes.Buffer wrapper that limits the size of written data.
// Host functions use it to clamp output to the guest's transfer buffer capacity.
type BoundedBuffer struct {
	buffer    bytes.Buffer
	limit     int
	Truncated bool
}

// NewBoundedBuffer creates a new BoundedBuffer with the specified limit.
func NewBoundedBuffer(limit int) *BoundedBuffer {
	return &BoundedBuffer{
		limit: limit,
	}
}

// Write implements io.Writer.
// Bytes past the limit are discarded and Truncated is set. It always reports
// len(p) written so callers such as json.Encoder do not fail on a short write.
func (b *BoundedBuffer) Write(p []byte) (int, error) {
	remaining := b.limit - b.buffer.Len()
	if remaining <= 0 {
		b.Truncated = b.Truncated || len(p) > 0
		return len(p), nil
	}
	if len(p) > remaining {
		b.Truncated = true
		b.buffer.Write(p[:remaining])
		return len(p), nil
	}
	b.buffer.Write(p)
	return len(p), nil
}

// Bytes returns the buffered data.
func (b *BoundedBuffer) Bytes() []byte {
	return b.buffer.Bytes()
}
