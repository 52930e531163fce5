package errors

// FieldError represents a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError carries a set of per-field errors as one AppError.
// Per-field failures are returned uncommitted: no session or database
// state is mutated when one of these is produced.
type ValidationError struct {
	*BaseError
	Fields []FieldError
}

// NewValidationError builds a ValidationError from field failures.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{
		BaseError: ErrValidationFailed,
		Fields:    fields,
	}
}

// NewFieldError builds a ValidationError for one field with the HTTP
// semantics of the given base error (used for uniqueness conflicts so
// the client can attach the message to the offending input).
func NewFieldError(base *BaseError, field string) *ValidationError {
	return &ValidationError{
		BaseError: base,
		Fields: []FieldError{
			{Field: field, Code: base.ErrorCode(), Message: base.Message()},
		},
	}
}

// Unwrap exposes the base error so callers can match the underlying
// sentinel with errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.BaseError
}

// HasField reports whether the validation error contains the given field.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}

	return false
}
