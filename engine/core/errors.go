package core

import (
	"errors"
)

var (
	ErrSubsystemNotStarted = errors.New("subsystem not initialized")
	ErrUnknown             = errors.New("unknown")
)
