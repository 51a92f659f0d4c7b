// Package sdk is the entry point for gojinn functions written in Go.
//
// A function reads one Request from stdin, calls zero or more host
// capabilities (see the log, db, kv, ai, mutex and jobs packages), and writes
// exactly one Response to stdout. There is no loop: one process handles one
// request.
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -o function.wasm .
package sdk

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	sdkerrors "github.com/pauloappbr/gojinn-sdk/domain/errors"
)

// Fixed response headers.
const (
	HeaderContentType = "Content-Type"
	HeaderRuntime     = "X-Runtime"

	ContentTypeJSON = "application/json"
	RuntimeName     = "Gojinn-Go"
)

var (
	errMissingBody = errors.New("missing field `body`")
	errNULByte     = errors.New("raw NUL byte in request")
)

// Request is the inbound envelope.
type Request struct {
	// Body is the request payload. Required in a non-empty envelope.
	Body string `json:"body"`

	// Headers is nil when the caller sent no headers.
	Headers map[string][]string `json:"headers,omitempty"`

	// Method is nil when the caller sent no method.
	Method *string `json:"method,omitempty"`
}

// Response is the outbound envelope.
type Response struct {
	Status  uint16              `json:"status"`
	Headers map[string][]string `json:"headers"`
	Body    string              `json:"body"`
}

// requestWire detects an absent body.
type requestWire struct {
	Body    *string             `json:"body"`
	Headers map[string][]string `json:"headers"`
	Method  *string             `json:"method"`
}

// ReadInput reads the request envelope from stdin.
func ReadInput() (Request, error) {
	return DecodeRequest(os.Stdin)
}

// DecodeRequest reads r to completion and decodes the request envelope.
// Empty or whitespace-only input yields a Request with an empty body and no
// headers or method. Any read or decode failure is returned as an
// *errors.EnvelopeError carrying the underlying diagnostic.
func DecodeRequest(r io.Reader) (Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Request{}, &sdkerrors.EnvelopeError{Err: fmt.Errorf("failed to read request: %w", err)}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Request{}, nil
	}

	if bytes.IndexByte(data, 0) >= 0 {
		return Request{}, &sdkerrors.EnvelopeError{Err: errNULByte}
	}

	var wire requestWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return Request{}, &sdkerrors.EnvelopeError{Err: err}
	}
	if wire.Body == nil {
		return Request{}, &sdkerrors.EnvelopeError{Err: errMissingBody}
	}

	return Request{
		Body:    *wire.Body,
		Headers: wire.Headers,
		Method:  wire.Method,
	}, nil
}

// NewResponse builds a Response carrying the fixed Content-Type and X-Runtime headers.
func NewResponse(status uint16, body string) Response {
	return Response{
		Status: status,
		Headers: map[string][]string{
			HeaderContentType: {ContentTypeJSON},
			HeaderRuntime:     {RuntimeName},
		},
		Body: body,
	}
}

// SendResponse writes the response envelope to stdout.
func SendResponse(status uint16, body string) {
	WriteResponse(os.Stdout, status, body)
}

// WriteResponse encodes the response envelope and writes it to w with no
// trailing newline.
//
// It is best effort: if encoding or writing fails nothing is reported, and
// no output may be produced. It runs at the very end of an invocation where
// there is no one left to report to.
func WriteResponse(w io.Writer, status uint16, body string) {
	data, err := json.Marshal(NewResponse(status, body))
	if err != nil {
		return
	}
	_, _ = w.Write(data)
}
