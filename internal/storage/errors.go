package storage

import "errors"

var (
	// ErrInvalidBackup is returned when an import document fails the shape
	// checks. Nothing is written in that case.
	ErrInvalidBackup = errors.New("invalid backup format: missing projects array")
)
