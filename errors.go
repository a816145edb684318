package tinyqrc

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/Mictilt/tinyqrc/symbol"
)

var (
	// ErrInvalidOptions is matched by every option validation failure. These
	// are reported before the encoder runs.
	ErrInvalidOptions = errors.New("invalid render options")

	// ErrEncodingCapacityExceeded is matched when the content does not fit
	// into any symbol version at the effective error correction level.
	ErrEncodingCapacityExceeded = symbol.ErrCapacityExceeded
)

// OptionError describes the rejected option.
type OptionError struct {
	Field  string
	Reason string
}

func (e *OptionError) Error() string {
	return ErrInvalidOptions.Error() + ": " + e.Field + ": " + e.Reason
}

// Is makes errors.Is(err, ErrInvalidOptions) hold.
func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidOptions
}

func invalid(field, format string, args ...interface{}) error {
	return &OptionError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
