// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the identity carried by a session token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (iss, sub,
// exp, iat) and adds the user's id, email and username so that handlers can
// resolve the caller without touching the credential store.
type SessionClaims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`

	jwt.RegisteredClaims
}

// NewSessionClaims builds the claim set for user.
func NewSessionClaims(user User) SessionClaims {
	return SessionClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}
}

// Token is a signed session token together with the claims it carries.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Claims are the identity claims embedded into the token.
	Claims SessionClaims `json:"-"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
