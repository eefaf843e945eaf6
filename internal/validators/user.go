package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// UserValidator checks and normalizes account payloads: signup, login and
// profile updates.
//
// Pointer arguments are normalized in place (emails trimmed and lowercased,
// usernames trimmed) before the rules run; value arguments are checked on a
// normalized copy.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the payload type. Optional fields restrict
// validation to the named subset; when omitted, every field of the payload
// is checked in declaration order and the first violation is returned.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.SignupRequest:
		return v.validateSignup(ctx, value, fields...)
	case models.SignupRequest:
		return v.validateSignup(ctx, &value, fields...)

	case *models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case models.LoginRequest:
		return v.validateLogin(ctx, &value, fields...)

	case *models.UpdateProfileRequest:
		return v.validateProfile(ctx, value, fields...)
	case models.UpdateProfileRequest:
		return v.validateProfile(ctx, &value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignup(ctx context.Context, request *models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword}
	}

	request.Email = normalizeEmail(request.Email)
	request.Username = strings.TrimSpace(request.Username)

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		case FieldUsername:
			if err := validateUsername(request.Username); err != nil {
				return err
			}
		case FieldPassword:
			if utf8.RuneCountInString(request.Password) < passwordMinLen {
				return ErrPasswordTooShort
			}
			if len(request.Password) > passwordMaxBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(ctx context.Context, request *models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	request.Email = normalizeEmail(request.Email)

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateProfile(ctx context.Context, request *models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBio, FieldAvatar}
	}

	if request.Avatar != nil {
		avatar := strings.TrimSpace(*request.Avatar)
		request.Avatar = &avatar
	}

	for _, f := range fields {
		switch f {
		case FieldBio:
			if request.Bio != nil && utf8.RuneCountInString(*request.Bio) > bioMaxLen {
				return ErrBioTooLong
			}
		case FieldAvatar:
			if request.Avatar != nil && !isOptionalURL(*request.Avatar) {
				return ErrInvalidAvatar
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
