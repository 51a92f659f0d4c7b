// Package entities provides the plain data types shared by the SDK layers:
// structured error details and validation results.
package entities
