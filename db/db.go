// Package db queries the database attached to the gojinn host.
//
// The host answers with a JSON array of row objects. When a query fails the
// host does not use a separate error channel: it answers with a one-row result
// set whose row carries an "error" field. Query inspects the first row for
// that marker and converts it into a *errors.DatabaseError. This is a gojinn
// host convention, not a general JSON one.
package db

import (
	"bytes"
	"errors"

	json "github.com/goccy/go-json"

	sdkerrors "github.com/pauloappbr/gojinn-sdk/domain/errors"
	"github.com/pauloappbr/gojinn-sdk/domain/ports"
	"github.com/pauloappbr/gojinn-sdk/infrastructure/wasm"
	"github.com/pauloappbr/gojinn-sdk/internal/abi"
)

// Row is one decoded result row.
type Row = map[string]any

// unknownError is reported when the host's error marker is not a string.
const unknownError = "Unknown DB Error"

var (
	errNotArray     = errors.New("expected a JSON array of rows")
	errOverCapacity = errors.New("reported length exceeds the transfer buffer")
	errNULByte      = errors.New("raw NUL byte in JSON output")
)

// Client runs queries through a ports.QueryHost.
type Client struct {
	host ports.QueryHost
}

// New creates a Client for host.
func New(host ports.QueryHost) *Client {
	return &Client{host: host}
}

// Query sends sql to the host and returns every decoded row.
//
// It fails with errors.ErrEmptyOrFailedQuery when the host wrote nothing, with
// a *errors.MalformedResponseError when the output is not a JSON array of
// objects, is cut off at the 64KiB buffer limit, or is reported longer than
// the buffer (never read in that case), and with a
// *errors.DatabaseError when the first row carries an "error" field.
// Queries are sent once; nothing is retried.
func (c *Client) Query(sql string) ([]Row, error) {
	buf := abi.NewTransferBuffer(abi.QueryBufferSize)

	written := c.host.DBQuery(sql, buf)
	if written == 0 {
		return nil, sdkerrors.ErrEmptyOrFailedQuery
	}

	data, ok := abi.Slice(buf, uint64(written))
	if !ok {
		return nil, &sdkerrors.MalformedResponseError{Operation: "db", Err: errOverCapacity}
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, &sdkerrors.MalformedResponseError{Operation: "db", Err: errNULByte}
	}

	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, &sdkerrors.MalformedResponseError{Operation: "db", Err: err}
	}
	if rows == nil {
		return nil, &sdkerrors.MalformedResponseError{Operation: "db", Err: errNotArray}
	}

	if len(rows) > 0 {
		if marker, found := rows[0]["error"]; found {
			msg, isText := marker.(string)
			if !isText {
				msg = unknownError
			}
			return nil, &sdkerrors.DatabaseError{Message: msg}
		}
	}

	return rows, nil
}

var std = New(wasm.NewHost())

// Query runs sql on the default host.
func Query(sql string) ([]Row, error) {
	return std.Query(sql)
}
