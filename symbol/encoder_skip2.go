package symbol

import (
	skip2 "github.com/skip2/go-qrcode"
)

type skip2Encoder struct{}

func (skip2Encoder) Encode(content string, lv Level) (Grid, error) {
	if err := checkLevel(lv); err != nil {
		return nil, err
	}

	q, err := skip2.New(content, skip2Level(lv))
	if err != nil {
		return nil, capacityError(BackendSkip2, content, lv, err)
	}
	q.DisableBorder = true

	g := Grid(q.Bitmap())
	if err = g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// skip2 names its tiers Low, Medium, High and Highest.
func skip2Level(lv Level) skip2.RecoveryLevel {
	switch lv {
	case M:
		return skip2.Medium
	case Q:
		return skip2.High
	case H:
		return skip2.Highest
	default:
		return skip2.Low
	}
}
