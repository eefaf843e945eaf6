// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used while decoding request payloads. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the body is not a single JSON object of
	// the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrEmptyBody is returned when a write endpoint receives no body at all.
	ErrEmptyBody = errors.New("empty request body")
)
