package sdk

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/pauloappbr/gojinn-sdk/domain/errors"
)

type counterInput struct {
	Key   string `json:"key" validate:"required"`
	Delta int    `json:"delta" validate:"min=1,max=100"`
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantField string
	}{
		{name: "valid", body: `{"key":"hits","delta":5}`},
		{name: "missing key", body: `{"delta":5}`, wantErr: true, wantField: "Key"},
		{name: "delta out of range", body: `{"key":"hits","delta":500}`, wantErr: true, wantField: "Delta"},
		{name: "not json", body: `key=hits`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in counterInput
			err := DecodeBody(&Request{Body: tt.body}, &in)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "hits", in.Key)
				assert.Equal(t, 5, in.Delta)
				return
			}

			require.Error(t, err)
			var cfgErr *sdkerrors.ConfigError
			require.True(t, stdErrors.As(err, &cfgErr))
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestDecodeBody_NonStructTarget(t *testing.T) {
	var m map[string]any
	require.NoError(t, DecodeBody(&Request{Body: `{"a":1}`}, &m))
	assert.Equal(t, float64(1), m["a"])
}
