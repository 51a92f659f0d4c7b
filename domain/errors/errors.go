// Package errors provides domain-specific error types for the SDK.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/pauloappbr/gojinn-sdk/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// ErrEmptyOrFailedQuery is returned when the host wrote nothing for a query.
var ErrEmptyOrFailedQuery = stdErrors.New("query returned empty or failed")

// DetailedError is an interface for custom error types that can convert themselves
// to a structured ErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to our structured ErrorDetail.
// This function recognizes custom error types and categorizes them appropriately.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	if stdErrors.Is(err, ErrEmptyOrFailedQuery) {
		return &entities.ErrorDetail{Message: err.Error(), Type: "database", Code: "empty_or_failed"}
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// MalformedResponseError reports host output that could not be decoded.
type MalformedResponseError struct {
	Err       error
	Operation string
}

func (e *MalformedResponseError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("failed to parse %s response: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("failed to parse host response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *MalformedResponseError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "protocol", Code: "malformed_response"}
}

// DatabaseError is a failure the host reported inside a query result set.
type DatabaseError struct {
	Message string
}

func (e *DatabaseError) Error() string {
	return e.Message
}

// ToErrorDetail implements DetailedError.
func (e *DatabaseError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Message, Type: "database", Code: "query_error"}
}

// EnvelopeError reports a request envelope that could not be read or decoded.
type EnvelopeError struct {
	Err error
}

func (e *EnvelopeError) Error() string {
	return e.Err.Error()
}

func (e *EnvelopeError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *EnvelopeError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: "envelope"}
}

// ConfigError represents a request body that failed decoding or validation.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: e.Field}
}

// GuestError reports a guest module that could not be compiled, failed to
// run, or exited with a non-zero code.
type GuestError struct {
	Err      error
	Module   string
	ExitCode uint32
}

func (e *GuestError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("guest %s exited with code %d: %v", e.Module, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("guest %s failed: %v", e.Module, e.Err)
}

func (e *GuestError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *GuestError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: e.Error(),
		Type:    "internal",
		Code:    "guest_failed",
		Details: map[string]any{"module": e.Module, "exit_code": e.ExitCode},
	}
}

// EnqueueError reports a job the host refused to accept.
type EnqueueError struct {
	Target string
	Code   uint32
}

func (e *EnqueueError) Error() string {
	return fmt.Sprintf("failed to enqueue job for %s (host code %d)", e.Target, e.Code)
}

// ToErrorDetail implements DetailedError.
func (e *EnqueueError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: e.Error(),
		Type:    "queue",
		Code:    fmt.Sprintf("enqueue_%d", e.Code),
		Details: map[string]any{"target": e.Target},
	}
}
