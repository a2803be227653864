package core

// Error codes for domain errors.
const (
	ErrCodeValidation   = "validation"
	ErrCodeEmptyMessage = "empty_message"
)

var (
	ErrNoUserID     = coreError(ErrCodeValidation, "No user ID")
	ErrInvalidColor = coreError(ErrCodeValidation, "Invalid color")
	ErrInvalidShape = coreError(ErrCodeValidation, "Invalid shape")
	ErrEmptyMessage = coreError(ErrCodeEmptyMessage, "No message text")
)

// CoreError wraps a code and human-readable message.
// Messages are shown to API callers verbatim.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
