package apperrors

import (
	"errors"
)

var (
	ErrServerAlreadyLinked = errors.New("server already linked")
	ErrInvalidKeyEvent     = errors.New("invalid server key event")
)
