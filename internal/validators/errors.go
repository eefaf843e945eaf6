package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is matched by every [ValidationError].
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError describes the first rule a payload violated. Its message
// is safe to show to the API caller verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes every ValidationError match [ErrInvalidInput] as well as the
// specific sentinel it was declared as.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var (
	ErrInvalidEmail         = newValidationError(FieldEmail, "Invalid email address")
	ErrUsernameTooShort     = newValidationError(FieldUsername, "Username must be at least 3 characters")
	ErrUsernameTooLong      = newValidationError(FieldUsername, "Username cannot exceed 30 characters")
	ErrUsernameInvalidChars = newValidationError(FieldUsername, "Username can only contain lowercase letters, numbers, hyphens, and underscores")
	ErrPasswordTooShort     = newValidationError(FieldPassword, "Password must be at least 6 characters")
	ErrPasswordTooLong      = newValidationError(FieldPassword, "Password cannot exceed 72 bytes")
	ErrPasswordRequired     = newValidationError(FieldPassword, "Password is required")
	ErrBioTooLong           = newValidationError(FieldBio, "Bio cannot exceed 500 characters")
	ErrInvalidAvatar        = newValidationError(FieldAvatar, "Invalid avatar URL")

	ErrTitleEmpty        = newValidationError(FieldTitle, "Title cannot be empty")
	ErrTitleTooLong      = newValidationError(FieldTitle, "Title cannot exceed 200 characters")
	ErrContentEmpty      = newValidationError(FieldContent, "Content cannot be empty")
	ErrInvalidCoverImage = newValidationError(FieldCoverImage, "Invalid cover image URL")
)
