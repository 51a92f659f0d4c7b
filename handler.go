package sdk

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime/debug"

	json "github.com/goccy/go-json"

	sdkerrors "github.com/pauloappbr/gojinn-sdk/domain/errors"
	"github.com/pauloappbr/gojinn-sdk/log"
)

// HandlerFunc handles one request. A non-nil error becomes a 500 response.
type HandlerFunc func(req *Request) (status uint16, body string, err error)

// Handle runs fn for the request on stdin and writes its response to stdout.
func Handle(fn HandlerFunc) {
	Serve(os.Stdin, os.Stdout, fn)
}

// Serve runs one request/response cycle over in and out.
//
// An envelope that cannot be decoded produces a 400 response, a handler error
// or panic a 500 response, both with a JSON body {"error": "..."}. Typed SDK
// errors add their "type" and "code".
func Serve(in io.Reader, out io.Writer, fn HandlerFunc) {
	req, err := DecodeRequest(in)
	if err != nil {
		log.Error("sdk: invalid request envelope: " + err.Error())
		WriteResponse(out, http.StatusBadRequest, errorBody(err))
		return
	}

	status, body, err := invoke(fn, &req)
	if err != nil {
		log.Error("sdk: handler failed: " + err.Error())
		WriteResponse(out, http.StatusInternalServerError, errorBody(err))
		return
	}
	WriteResponse(out, status, body)
}

// invoke calls fn, converting a panic into an error.
func invoke(fn HandlerFunc, req *Request) (status uint16, body string, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug("sdk: handler panic stack: " + string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(req)
}

type errorPayload struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
	Code  string `json:"code,omitempty"`
}

func errorBody(err error) string {
	payload := errorPayload{Error: err.Error()}
	if detail := sdkerrors.ToErrorDetail(err); detail.Type != "internal" {
		payload.Type, payload.Code = detail.Type, detail.Code
	}
	data, mErr := json.Marshal(payload)
	if mErr != nil {
		return `{"error":"internal error"}`
	}
	return string(data)
}
