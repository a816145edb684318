package symbol

import (
	"rsc.io/qr"
)

type rscEncoder struct{}

func (rscEncoder) Encode(content string, lv Level) (Grid, error) {
	if err := checkLevel(lv); err != nil {
		return nil, err
	}

	code, err := qr.Encode(content, rscLevel(lv))
	if err != nil {
		return nil, capacityError(BackendRSC, content, lv, err)
	}

	g := NewGrid(code.Size)
	for y := 0; y < code.Size; y++ {
		for x := 0; x < code.Size; x++ {
			g[y][x] = code.Black(x, y)
		}
	}

	return g, nil
}

func rscLevel(lv Level) qr.Level {
	switch lv {
	case M:
		return qr.M
	case Q:
		return qr.Q
	case H:
		return qr.H
	default:
		return qr.L
	}
}
