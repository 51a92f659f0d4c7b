// Package schema generates JSON Schemas for the request and response envelopes.
package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"

	sdk "github.com/pauloappbr/gojinn-sdk"
)

// GenerateSchema creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12).
// Fields without `omitempty` are required; unknown properties are allowed.
func GenerateSchema(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true, // Expand struct definitions inline
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// RequestSchema returns the schema of the inbound envelope.
func RequestSchema() ([]byte, error) {
	return GenerateSchema(&sdk.Request{})
}

// ResponseSchema returns the schema of the outbound envelope.
func ResponseSchema() ([]byte, error) {
	return GenerateSchema(&sdk.Response{})
}
