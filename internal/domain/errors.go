package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user is inactive")
	ErrMissingDocumentType = errors.New("missing document type")
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrInsufficientEntries = errors.New("insufficient entries")
	ErrMalformedPayload    = errors.New("malformed payload")
	ErrTemplateNotFound    = errors.New("template not found")
	ErrCompanyNotFound     = errors.New("company not found in registry")
	ErrRegistryUnavailable = errors.New("company registry unavailable")
)
