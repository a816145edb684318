package symbol

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrCapacityExceeded is matched by every encode failure: the content does
// not fit into any symbol version at the requested level.
var ErrCapacityExceeded = errors.New("content exceeds symbol capacity")

// Encoder turns content into a margin-less module grid. Implementations must
// be safe for concurrent use.
type Encoder interface {
	Encode(content string, level Level) (Grid, error)
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(content string, level Level) (Grid, error)

// Encode calls f(content, level).
func (f EncoderFunc) Encode(content string, level Level) (Grid, error) {
	return f(content, level)
}

// CapacityError carries the backend failure behind ErrCapacityExceeded.
type CapacityError struct {
	Backend Backend
	Level   Level
	Length  int
	Err     error
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %d bytes at level %s (%s): %v",
		ErrCapacityExceeded, e.Length, e.Level, e.Backend, e.Err)
}

// Unwrap returns the backend error.
func (e *CapacityError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrCapacityExceeded) hold.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

func capacityError(b Backend, content string, lv Level, err error) error {
	return &CapacityError{Backend: b, Level: lv, Length: len(content), Err: err}
}

// Backend names a bundled encoder implementation.
type Backend string

const (
	// BackendYeqown is github.com/yeqown/go-qrcode/v2, the default.
	BackendYeqown Backend = "yeqown"
	// BackendSkip2 is github.com/skip2/go-qrcode.
	BackendSkip2 Backend = "skip2"
	// BackendRSC is rsc.io/qr.
	BackendRSC Backend = "rsc"
)

// Backends lists every bundled backend, default first.
var Backends = []Backend{BackendYeqown, BackendSkip2, BackendRSC}

// ParseBackend parses a backend name. The empty string selects the default.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendYeqown, nil
	case BackendYeqown, BackendSkip2, BackendRSC:
		return b, nil
	}

	return "", errors.Errorf("unknown encoder backend %q", s)
}

// NewEncoder returns the encoder for b.
func NewEncoder(b Backend) (Encoder, error) {
	switch b {
	case BackendYeqown, "":
		return yeqownEncoder{}, nil
	case BackendSkip2:
		return skip2Encoder{}, nil
	case BackendRSC:
		return rscEncoder{}, nil
	}

	return nil, errors.Errorf("unknown encoder backend %q", string(b))
}

// DefaultEncoder returns the default backend.
func DefaultEncoder() Encoder {
	return yeqownEncoder{}
}

func checkLevel(lv Level) error {
	if !lv.Valid() {
		return errors.Errorf("invalid error correction level %s", lv)
	}

	return nil
}
