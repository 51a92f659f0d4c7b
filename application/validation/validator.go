// Package validation checks raw envelope documents against their JSON schemas.
package validation

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pauloappbr/gojinn-sdk/application/schema"
	"github.com/pauloappbr/gojinn-sdk/domain/entities"
)

const (
	requestResource  = "request.json"
	responseResource = "response.json"
)

// EnvelopeValidator validates request and response documents.
type EnvelopeValidator struct {
	request  *jsonschema.Schema
	response *jsonschema.Schema
}

// NewEnvelopeValidator compiles the envelope schemas.
func NewEnvelopeValidator() (*EnvelopeValidator, error) {
	compiler := jsonschema.NewCompiler()

	request, err := compile(compiler, requestResource, schema.RequestSchema)
	if err != nil {
		return nil, err
	}
	response, err := compile(compiler, responseResource, schema.ResponseSchema)
	if err != nil {
		return nil, err
	}

	return &EnvelopeValidator{request: request, response: response}, nil
}

func compile(compiler *jsonschema.Compiler, name string, generate func() ([]byte, error)) (*jsonschema.Schema, error) {
	raw, err := generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema %s: %w", name, err)
	}
	if err := compiler.AddResource(name, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource %s: %w", name, err)
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("invalid schema %s: %w", name, err)
	}
	return sch, nil
}

// ValidateRequest checks a raw request document.
func (v *EnvelopeValidator) ValidateRequest(data []byte) *entities.ValidationResult {
	return validate(v.request, "request", data)
}

// ValidateResponse checks a raw response document.
func (v *EnvelopeValidator) ValidateResponse(data []byte) *entities.ValidationResult {
	return validate(v.response, "response", data)
}

func validate(sch *jsonschema.Schema, field string, data []byte) *entities.ValidationResult {
	result := &entities.ValidationResult{Valid: true}

	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, entities.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("not a JSON document: %v", err),
		})
		return result
	}

	if err := sch.Validate(obj); err != nil {
		result.Valid = false
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			for _, cause := range leafCauses(ve) {
				result.Errors = append(result.Errors, entities.ValidationError{
					Field:   field + cause.InstanceLocation,
					Message: cause.Message,
				})
			}
		} else {
			result.Errors = append(result.Errors, entities.ValidationError{
				Field:   field,
				Message: err.Error(),
			})
		}
	}

	return result
}

// leafCauses flattens the validation error tree to the errors that carry a
// concrete reason.
func leafCauses(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var out []*jsonschema.ValidationError
	for _, c := range ve.Causes {
		out = append(out, leafCauses(c)...)
	}
	return out
}
