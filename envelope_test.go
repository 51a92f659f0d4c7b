package sdk

import (
	"bytes"
	stdErrors "errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/pauloappbr/gojinn-sdk/domain/errors"
)

func TestDecodeRequest_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t \r\n"} {
		req, err := DecodeRequest(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, "", req.Body)
		assert.Nil(t, req.Headers)
		assert.Nil(t, req.Method)
	}
}

func TestDecodeRequest_BodyAndMethod(t *testing.T) {
	req, err := DecodeRequest(strings.NewReader(`{"body":"hi","method":"POST"}`))
	require.NoError(t, err)

	assert.Equal(t, "hi", req.Body)
	require.NotNil(t, req.Method)
	assert.Equal(t, "POST", *req.Method)
	assert.Nil(t, req.Headers)
}

func TestDecodeRequest_Headers(t *testing.T) {
	input := `{"body":"","headers":{"Accept":["text/plain","application/json"]},"extra":1}`
	req, err := DecodeRequest(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"text/plain", "application/json"}, req.Headers["Accept"])
	assert.Nil(t, req.Method)
}

func TestDecodeRequest_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "hello"},
		{"truncated", `{"body":"x"`},
		{"wrong type", `{"body":42}`},
		{"missing body", `{"method":"GET"}`},
		{"null body", `{"body":null}`},
		{"trailing data", `{"body":"x"} {}`},
		{"data after NUL byte", "{\"body\":\"hi\"}\x00garbage"},
		{"leading NUL byte", "\x00{\"body\":\"hi\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRequest(strings.NewReader(tt.input))
			require.Error(t, err)

			var envErr *sdkerrors.EnvelopeError
			assert.True(t, stdErrors.As(err, &envErr))
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, stdErrors.New("stdin closed") }

func TestDecodeRequest_ReadError(t *testing.T) {
	_, err := DecodeRequest(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin closed")
}

func TestWriteResponse(t *testing.T) {
	var buf bytes.Buffer
	WriteResponse(&buf, 200, "ok")

	assert.False(t, strings.HasSuffix(buf.String(), "\n"))

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, uint16(200), resp.Status)
	assert.Equal(t, "ok", resp.Body)
	assert.Equal(t, []string{"application/json"}, resp.Headers["Content-Type"])
	assert.Equal(t, []string{RuntimeName}, resp.Headers["X-Runtime"])
	assert.Len(t, resp.Headers, 2)
}

func TestWriteResponse_EscapesBody(t *testing.T) {
	var buf bytes.Buffer
	body := `{"msg":"line1\nline2","quote":"\""}`
	WriteResponse(&buf, 201, body)

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, body, resp.Body)
	assert.Equal(t, uint16(201), resp.Status)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stdErrors.New("stdout closed") }

func TestWriteResponse_WriteErrorSwallowed(t *testing.T) {
	assert.NotPanics(t, func() {
		WriteResponse(failingWriter{}, 500, "boom")
	})
}
