package symbol

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level is the error correction level of a symbol.
type Level uint8

const (
	// L recovers about 7% of the codewords.
	L Level = iota + 1
	// M recovers about 15% of the codewords.
	M
	// Q recovers about 25% of the codewords.
	Q
	// H recovers about 30% of the codewords.
	H
)

// Levels lists every valid level, weakest first.
var Levels = []Level{L, M, Q, H}

// ParseLevel parses "L", "M", "Q" or "H", case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return L, nil
	case "M":
		return M, nil
	case "Q":
		return Q, nil
	case "H":
		return H, nil
	}

	return 0, errors.Errorf("unknown error correction level %q", s)
}

// Valid reports whether lv is one of L, M, Q or H.
func (lv Level) Valid() bool {
	return lv >= L && lv <= H
}

func (lv Level) String() string {
	switch lv {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	}

	return "Level(" + strconv.Itoa(int(lv)) + ")"
}
