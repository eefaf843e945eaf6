package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// PostValidator checks and normalizes post payloads.
//
// Titles and cover image URLs are trimmed in place; a create request
// without isDraft gets an explicit false.
type PostValidator struct {
}

func NewPostValidator() Validator {
	return &PostValidator{}
}

func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.CreatePostRequest:
		return v.validateCreate(ctx, value, fields...)
	case models.CreatePostRequest:
		return v.validateCreate(ctx, &value, fields...)

	case *models.UpdatePostRequest:
		return v.validateUpdate(ctx, value, fields...)
	case models.UpdatePostRequest:
		return v.validateUpdate(ctx, &value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validateCreate(ctx context.Context, request *models.CreatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldCoverImage}
	}

	request.Title = strings.TrimSpace(request.Title)
	request.CoverImage = strings.TrimSpace(request.CoverImage)
	if request.IsDraft == nil {
		isDraft := false
		request.IsDraft = &isDraft
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(request.Title); err != nil {
				return err
			}
		case FieldContent:
			if request.Content == "" {
				return ErrContentEmpty
			}
		case FieldCoverImage:
			if !isOptionalURL(request.CoverImage) {
				return ErrInvalidCoverImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PostValidator) validateUpdate(ctx context.Context, request *models.UpdatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldCoverImage}
	}

	if request.Title != nil {
		title := strings.TrimSpace(*request.Title)
		request.Title = &title
	}
	if request.CoverImage != nil {
		coverImage := strings.TrimSpace(*request.CoverImage)
		request.CoverImage = &coverImage
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title != nil {
				if err := validateTitle(*request.Title); err != nil {
					return err
				}
			}
		case FieldContent:
			if request.Content != nil && *request.Content == "" {
				return ErrContentEmpty
			}
		case FieldCoverImage:
			if request.CoverImage != nil && !isOptionalURL(*request.CoverImage) {
				return ErrInvalidCoverImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	switch {
	case n == 0:
		return ErrTitleEmpty
	case n > titleMaxLen:
		return ErrTitleTooLong
	}
	return nil
}
