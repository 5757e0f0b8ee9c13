package storage

import "errors"

var (
	ErrItemNotFound = errors.New("design not found")
	ErrDuplicateID  = errors.New("duplicate design id")
	ErrJobNotFound  = errors.New("generation job not found")
)
