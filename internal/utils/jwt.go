package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSessionToken is returned for every token that fails verification:
// malformed, tampered, signed with another key or algorithm, issued by
// someone else, or expired.
var ErrInvalidSessionToken = errors.New("invalid session token")

// GenerateSessionToken creates a signed HMAC-SHA256 JWT carrying claims.
//
// Besides the identity claims (userId, email, username) the token includes:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("go-blog", models.NewSessionClaims(user), 168*time.Hour, "secret")
func GenerateSessionToken(issuer string, claims models.SessionClaims, tokenDuration time.Duration, signKey string) (models.Token, error) {
	return generateSessionToken(issuer, claims, tokenDuration, signKey, time.Now())
}

func generateSessionToken(issuer string, claims models.SessionClaims, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || claims.UserID == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	expiresAt := now.Add(tokenDuration)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.UserID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return models.Token{SignedString: tokenString, Claims: claims, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ValidateSessionToken verifies tokenString and extracts its claims.
//
// Validation includes:
//   - Signature verification with HS256 and the provided sign key
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence and check
//   - userId claim presence and agreement with the subject
//
// Every failure wraps [ErrInvalidSessionToken].
//
// Example usage:
//
//	claims, err := utils.ValidateSessionToken(raw, "secret", "go-blog")
//	if err != nil {
//	    // treat the caller as anonymous
//	}
func ValidateSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.SessionClaims, error) {
	return validateSessionToken(tokenString, tokenSignKey, tokenIssuer, time.Now)
}

func validateSessionToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.SessionClaims, error) {
	var claims models.SessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.SessionClaims{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}

	if claims.UserID == "" || claims.Subject != claims.UserID {
		return models.SessionClaims{}, fmt.Errorf("%w: subject does not match user id", ErrInvalidSessionToken)
	}

	return claims, nil
}
