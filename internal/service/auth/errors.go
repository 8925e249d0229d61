package auth

import "errors"

// Authentication errors. Callers map all of them to 401.
var (
	// ErrInvalidToken indicates a malformed token, a bad signature, or a
	// token signed with an unexpected algorithm.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrWrongTokenType indicates a validly signed token issued for another purpose.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")
)
