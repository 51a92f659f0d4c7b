package entities

// ValidationResult represents the outcome of validating a document against a schema.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidationError represents a specific validation error.
type ValidationError struct {
	// Field is the document name followed by the JSON pointer of the offending value.
	Field   string
	Message string
}
