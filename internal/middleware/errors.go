package middleware

import (
	"net/http"

	"go-care/internal/shared/apperror"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New("INVALID_TOKEN", "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New("TOKEN_EXPIRED", "Token has expired", http.StatusUnauthorized)
	ErrMissingClaim  = apperror.New("INVALID_TOKEN", "Token is missing required claims", http.StatusUnauthorized)
	ErrProcessing    = apperror.New("PROCESSING", "The same request is still being processed", http.StatusConflict)
	ErrTooMany       = apperror.New("TOO_MANY_REQUESTS", "Too many requests", http.StatusTooManyRequests)
)
