// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account and post payloads before they reach the
// store.
//
// A [Validator] normalizes its input (trimming, lowercasing emails) and then
// applies the field rules in a fixed order. The first broken rule is returned
// as a [ValidationError] whose message can be sent to API callers as is.
// Callers may pass field names to check only a subset, e.g. just the email
// of a login request.
package validators

import "context"

// Validator validates one payload type family. Pointer arguments are
// normalized in place.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
