package pricing

import (
	"errors"
	"fmt"
)

var ErrUnknownService = errors.New("unknown service")

// UnknownServiceError is returned by the dispatcher for service identifiers
// that have no registered calculator.
type UnknownServiceError struct {
	Service string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service: %s", e.Service)
}

func (e *UnknownServiceError) Is(target error) bool {
	return target == ErrUnknownService
}
