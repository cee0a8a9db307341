package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoRegistry     = errors.New("service requires a player registry")
	ErrNotStarted     = errors.New("service not started")
	ErrTooManyPlayers = errors.New("too many players requested for comparison")
)
