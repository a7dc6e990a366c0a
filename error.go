package flyweight

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit key is not one of the registered unit kinds
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrRegistryClosed registry was torn down
	ErrRegistryClosed = errors.New("registry was closed")
)

// UnknownUnitError reports the key that failed to resolve.
type UnknownUnitError struct {
	Key string
}

func (e UnknownUnitError) Error() string {
	return fmt.Sprintf("flyweight: unknown unit %q", e.Key)
}

func (e UnknownUnitError) Unwrap() error {
	return ErrUnknownUnit
}
