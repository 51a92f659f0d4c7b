package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorDetail_Error(t *testing.T) {
	tests := []struct {
		name   string
		detail *ErrorDetail
		want   string
	}{
		{"nil", nil, ""},
		{"internal", NewErrorDetail("internal", "boom"), "boom"},
		{"typed", NewErrorDetail("database", "no such table"), "database: no such table"},
		{"coded", NewErrorDetail("queue", "rejected").WithCode("enqueue_1"), "queue: rejected [enqueue_1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.detail.Error())
		})
	}
}
