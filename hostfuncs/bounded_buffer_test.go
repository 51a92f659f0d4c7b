package hostfuncs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundedBuffer_Write(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		writes        []string
		want          string
		wantTruncated bool
	}{
		{name: "within limit", limit: 100, writes: []string{`[{"id":1}]`}, want: `[{"id":1}]`},
		{name: "exactly at limit", limit: 10, writes: []string{`[{"id":1}]`}, want: `[{"id":1}]`},
		{name: "truncates result set", limit: 8, writes: []string{`[{"id":1}]`}, want: `[{"id":1`, wantTruncated: true},
		{name: "truncates across writes", limit: 6, writes: []string{"[1,", "2,", "3]"}, want: "[1,2,3", wantTruncated: true},
		{name: "discards after limit", limit: 3, writes: []string{"abc", "def"}, want: "abc", wantTruncated: true},
		{name: "zero limit", limit: 0, writes: []string{"abc"}, want: "", wantTruncated: true},
		{name: "empty write at limit", limit: 3, writes: []string{"abc", ""}, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBoundedBuffer(tt.limit)
			for _, w := range tt.writes {
				n, err := buf.Write([]byte(w))
				assert.NoError(t, err)
				assert.Equal(t, len(w), n)
			}
			assert.Equal(t, tt.want, string(buf.Bytes()))
			assert.Equal(t, tt.wantTruncated, buf.Truncated)
		})
	}
}
