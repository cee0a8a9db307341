package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrNotFound    = errors.New("player not found")
	ErrDuplicateID = errors.New("duplicate player id")
	ErrSeedFile    = errors.New("load seed file failed")
)
