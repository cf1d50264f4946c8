package utils

import "errors"

// Common application errors used across services. Not-found is a distinct
// sentinel so callers can tell a missing row apart from a transport failure.
var (
	ErrNotFound            = errors.New("NOT_FOUND")
	ErrInvalidCredentials  = errors.New("INVALID_CREDENTIALS")
	ErrEmailInUse          = errors.New("EMAIL_IN_USE")
	ErrAuthNotConfigured   = errors.New("AUTH_NOT_CONFIGURED")
	ErrInvalidCategory     = errors.New("INVALID_CATEGORY")
	ErrInvalidStatus       = errors.New("INVALID_STATUS")
	ErrSlugExists          = errors.New("SLUG_EXISTS")
	ErrInvalidSlug         = errors.New("INVALID_SLUG")
	ErrFileTooLarge        = errors.New("FILE_TOO_LARGE")
	ErrUnsupportedFileType = errors.New("UNSUPPORTED_FILE_TYPE")
	ErrInvalidToken        = errors.New("INVALID_TOKEN")
)
