package project

import (
	"errors"

	"github.com/thenoetrevino/tablero/internal/storage"
)

// Domain errors for project service
var (
	// Business logic errors
	ErrProjectNotFound  = errors.New("project not found")
	ErrLastProject      = errors.New("cannot delete the last project")
	ErrAmbiguousProject = errors.New("project name matches more than one project")

	// Backup errors
	ErrInvalidBackup = storage.ErrInvalidBackup
)
