package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("reservation not found")
	ErrInvalidReservation = errors.New("invalid reservation")
	ErrIDMismatch         = errors.New("idReservation does not match path")
)
