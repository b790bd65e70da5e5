package domain

import "errors"

var (
	ErrPropertyNotFound      = errors.New("property not found")
	ErrSavedPropertyNotFound = errors.New("saved property not found")
	ErrInvalidInput          = errors.New("invalid input")
)
