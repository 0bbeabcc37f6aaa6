package domain

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidName  = errors.New("item name must not be empty")
)
