package vault

import "errors"

var (
	ErrNotConfigured  = errors.New("vault is not configured")
	ErrAuth           = errors.New("vault authentication failed")
	ErrSecretNotFound = errors.New("secret not found")
)
