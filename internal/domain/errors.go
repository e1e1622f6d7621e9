package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange indica intervalo com fim anterior ao início em modo estrito
var ErrInvalidRange = errors.New("invalid range")

// RangeError carrega o intervalo rejeitado
type RangeError struct {
	Start       time.Time
	End         time.Time
	Granularity Granularity
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: fim %s anterior ao início %s",
		ErrInvalidRange.Error(), e.End.Format(time.DateOnly), e.Start.Format(time.DateOnly))
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}
