package db

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/pauloappbr/gojinn-sdk/domain/errors"
	"github.com/pauloappbr/gojinn-sdk/internal/abi"
	"github.com/pauloappbr/gojinn-sdk/sdktest"
)

// fixedHost reports a fixed written count and writes data into the buffer.
type fixedHost struct {
	data    []byte
	written uint32
	gotSQL  string
}

func (h *fixedHost) DBQuery(sql string, out []byte) uint32 {
	h.gotSQL = sql
	copy(out, h.data)
	return h.written
}

func TestQuery_Rows(t *testing.T) {
	host := sdktest.NewHost(sdktest.WithRows("SELECT id, name FROM users",
		map[string]any{"id": 1, "name": "ana"},
		map[string]any{"id": 2, "name": "bia"},
	))

	rows, err := New(host).Query("SELECT id, name FROM users")
	require.NoError(t, err)

	want := []Row{
		{"id": float64(1), "name": "ana"},
		{"id": float64(2), "name": "bia"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestQuery_EmptyResultSet(t *testing.T) {
	host := sdktest.NewHost(sdktest.WithRows("SELECT * FROM empty"))

	rows, err := New(host).Query("SELECT * FROM empty")
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestQuery_ZeroWritten(t *testing.T) {
	for _, sql := range []string{"", "SELECT 1", "DROP TABLE x", strings.Repeat("?", 1000)} {
		_, err := New(&fixedHost{written: 0}).Query(sql)
		assert.ErrorIs(t, err, sdkerrors.ErrEmptyOrFailedQuery, "sql=%q", sql)
	}

	// The fake host writes nothing for unknown queries.
	_, err := New(sdktest.NewHost()).Query("SELECT unknown")
	assert.ErrorIs(t, err, sdkerrors.ErrEmptyOrFailedQuery)
}

func TestQuery_DatabaseError(t *testing.T) {
	host := sdktest.NewHost(sdktest.WithQueryError("SELECT * FROM missing", "no such table: missing"))

	rows, err := New(host).Query("SELECT * FROM missing")
	assert.Nil(t, rows)

	var dbErr *sdkerrors.DatabaseError
	require.True(t, errors.As(err, &dbErr))
	assert.Equal(t, "no such table: missing", dbErr.Message)
}

func TestQuery_NonTextErrorMarker(t *testing.T) {
	host := &fixedHost{data: []byte(`[{"error":{"code":5}}]`)}
	host.written = uint32(len(host.data))

	_, err := New(host).Query("SELECT 1")
	var dbErr *sdkerrors.DatabaseError
	require.True(t, errors.As(err, &dbErr))
	assert.Equal(t, "Unknown DB Error", dbErr.Message)
}

func TestQuery_ErrorKeyOnlyCheckedOnFirstRow(t *testing.T) {
	host := sdktest.NewHost(sdktest.WithRows("SELECT log",
		map[string]any{"id": 1},
		map[string]any{"id": 2, "error": "not a failure here"},
	))

	rows, err := New(host).Query("SELECT log")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "not a failure here", rows[1]["error"])
}

func TestQuery_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "truncated", raw: `[{"id":1},{"id"`},
		{name: "not json", raw: `oops`},
		{name: "object instead of array", raw: `{"id":1}`},
		{name: "array of scalars", raw: `[1,2,3]`},
		{name: "null", raw: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := sdktest.NewHost(sdktest.WithRawQuery("SELECT 1", []byte(tt.raw)))

			_, err := New(host).Query("SELECT 1")
			var malformed *sdkerrors.MalformedResponseError
			require.True(t, errors.As(err, &malformed), "got %v", err)
			assert.NotNil(t, malformed.Unwrap())
			assert.Contains(t, err.Error(), "failed to parse db response")
		})
	}
}

func TestQuery_OversizedResponseFailsToParse(t *testing.T) {
	// Larger than the transfer buffer: the host truncates its write and the
	// parser rejects the cut-off document instead of returning partial rows.
	row := map[string]any{"blob": strings.Repeat("x", 1024)}
	rows := make([]map[string]any, 80)
	for i := range rows {
		rows[i] = row
	}
	host := sdktest.NewHost(sdktest.WithRows("SELECT blob", rows...))

	got, err := New(host).Query("SELECT blob")
	assert.Nil(t, got)
	var malformed *sdkerrors.MalformedResponseError
	assert.True(t, errors.As(err, &malformed))
}

func TestQuery_WrittenBeyondCapacity(t *testing.T) {
	fullBuffer := append([]byte(`[{"a":"`), bytes.Repeat([]byte("x"), abi.QueryBufferSize-10)...)
	fullBuffer = append(fullBuffer, `"}]`...)

	tests := []struct {
		name    string
		data    []byte
		written uint32
	}{
		{"short document then zeroed buffer", []byte(`[{"id":1}]`), abi.QueryBufferSize + 1},
		{"valid document filling the buffer", fullBuffer, abi.QueryBufferSize + 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &fixedHost{data: tt.data, written: tt.written}

			rows, err := New(host).Query("SELECT 1")
			assert.Nil(t, rows)
			var malformed *sdkerrors.MalformedResponseError
			require.True(t, errors.As(err, &malformed))
			assert.ErrorIs(t, err, errOverCapacity)
		})
	}
}

func TestQuery_NULByteInOutput(t *testing.T) {
	data := []byte("[{\"id\":1}]\x00garbage")
	host := &fixedHost{data: data, written: uint32(len(data))}

	rows, err := New(host).Query("SELECT 1")
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, errNULByte)
}

func TestQuery_PassesSQLVerbatim(t *testing.T) {
	host := &fixedHost{data: []byte(`[]`), written: 2}
	_, err := New(host).Query("SELECT 'ünï'")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 'ünï'", host.gotSQL)
}

func TestDefaultClientWithoutHost(t *testing.T) {
	_, err := Query("SELECT 1")
	assert.ErrorIs(t, err, sdkerrors.ErrEmptyOrFailedQuery)
}
