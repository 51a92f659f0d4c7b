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

func serve(t *testing.T, input string, fn HandlerFunc) Response {
	t.Helper()

	var out bytes.Buffer
	Serve(strings.NewReader(input), &out, fn)

	var resp Response
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	return resp
}

func TestServe_Success(t *testing.T) {
	resp := serve(t, `{"body":"ping","method":"POST"}`, func(req *Request) (uint16, string, error) {
		return 201, req.MethodOr("GET") + ":" + req.Body, nil
	})

	assert.Equal(t, uint16(201), resp.Status)
	assert.Equal(t, "POST:ping", resp.Body)
	assert.Equal(t, []string{RuntimeName}, resp.Headers[HeaderRuntime])
}

func TestServe_EmptyInput(t *testing.T) {
	called := false
	resp := serve(t, "", func(req *Request) (uint16, string, error) {
		called = true
		assert.Equal(t, "", req.Body)
		return 200, "empty", nil
	})

	assert.True(t, called)
	assert.Equal(t, "empty", resp.Body)
}

func TestServe_BadEnvelope(t *testing.T) {
	called := false
	resp := serve(t, "{not json", func(*Request) (uint16, string, error) {
		called = true
		return 200, "", nil
	})

	assert.False(t, called)
	assert.Equal(t, uint16(400), resp.Status)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.NotEmpty(t, body["error"])
	assert.Equal(t, "validation", body["type"])
	assert.Equal(t, "envelope", body["code"])
}

func TestServe_HandlerError(t *testing.T) {
	resp := serve(t, `{"body":""}`, func(*Request) (uint16, string, error) {
		return 200, "ignored", stdErrors.New("database unavailable")
	})

	assert.Equal(t, uint16(500), resp.Status)
	assert.JSONEq(t, `{"error":"database unavailable"}`, resp.Body)
}

func TestServe_TypedHandlerError(t *testing.T) {
	resp := serve(t, `{"body":""}`, func(*Request) (uint16, string, error) {
		return 0, "", &sdkerrors.DatabaseError{Message: "no such table"}
	})

	assert.Equal(t, uint16(500), resp.Status)
	assert.JSONEq(t, `{"error":"no such table","type":"database","code":"query_error"}`, resp.Body)
}

func TestServe_HandlerPanic(t *testing.T) {
	resp := serve(t, `{"body":""}`, func(*Request) (uint16, string, error) {
		panic("nil map")
	})

	assert.Equal(t, uint16(500), resp.Status)
	assert.JSONEq(t, `{"error":"panic: nil map"}`, resp.Body)
}
