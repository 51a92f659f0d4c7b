// Package fixtures loads canned host capability data from YAML so compiled
// guests can be run locally without real services.
//
// Example file:
//
//	kv:
//	  visits: "41"
//	queries:
//	  - sql: SELECT id, name FROM users
//	    rows:
//	      - {id: 1, name: alice}
//	  - sql: SELECT * FROM missing
//	    error: no such table
//	ai:
//	  answers:
//	    "Say hi": "Hi!"
//	  echo: true
package fixtures

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pauloappbr/gojinn-sdk/domain/errors"
	"github.com/pauloappbr/gojinn-sdk/hostfuncs"
)

var validate = validator.New()

// File is the fixture document.
type File struct {
	KV      map[string]string `yaml:"kv"`
	Queries []Query           `yaml:"queries" validate:"unique=SQL,dive"`
	AI      AI                `yaml:"ai"`
}

// Query is the canned result of one SQL text. At most one of Rows, Error and Raw is set.
type Query struct {
	SQL   string           `yaml:"sql" validate:"required"`
	Rows  []map[string]any `yaml:"rows" validate:"excluded_with=Error Raw"`
	Error string           `yaml:"error" validate:"excluded_with=Raw"`
	Raw   string           `yaml:"raw"`
}

// AI configures completion answers.
type AI struct {
	Answers map[string]string `yaml:"answers"`
	Default string            `yaml:"default"`
	Echo    bool              `yaml:"echo"`
}

// Parse decodes and validates a fixture document. Unknown keys are rejected.
// An empty document yields an empty File.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !stdErrors.Is(err, io.EOF) {
		return nil, &errors.ConfigError{Err: fmt.Errorf("failed to parse fixtures: %w", err)}
	}

	if err := validate.Struct(&f); err != nil {
		var fieldErrs validator.ValidationErrors
		if stdErrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, &errors.ConfigError{Field: fieldErrs[0].Namespace(), Err: err}
		}
		return nil, &errors.ConfigError{Err: err}
	}
	return &f, nil
}

// Load reads and parses the fixture file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}
	return Parse(data)
}

// Backends builds in-memory backends serving the fixture data. Guest log
// lines go to logger, or slog.Default when nil.
func (f *File) Backends(logger *slog.Logger) hostfuncs.Backends {
	queries := make(map[string]hostfuncs.QueryFixture, len(f.Queries))
	for _, q := range f.Queries {
		fixture := hostfuncs.QueryFixture{Rows: q.Rows, Error: q.Error}
		if q.Raw != "" {
			fixture.Raw = []byte(q.Raw)
		}
		queries[q.SQL] = fixture
	}

	return hostfuncs.Backends{
		Logger:   hostfuncs.SlogLogger{Logger: logger},
		Database: hostfuncs.NewFixtureDatabase(queries),
		KV:       hostfuncs.NewMemoryKV(f.KV),
		AI: &hostfuncs.FixtureAI{
			Answers: f.AI.Answers,
			Default: f.AI.Default,
			Echo:    f.AI.Echo,
		},
		Locker: hostfuncs.NewMemoryLocker(),
		Queue:  &hostfuncs.MemoryQueue{},
	}
}
