package symbol

import (
	"github.com/pkg/errors"
	qrcode "github.com/yeqown/go-qrcode/v2"
)

type yeqownEncoder struct{}

func (yeqownEncoder) Encode(content string, lv Level) (Grid, error) {
	if err := checkLevel(lv); err != nil {
		return nil, err
	}

	qrc, err := qrcode.NewWith(content, yeqownLevel(lv))
	if err != nil {
		return nil, capacityError(BackendYeqown, content, lv, err)
	}

	w := &matrixWriter{}
	if err = qrc.Save(w); err != nil {
		return nil, errors.Wrap(err, "collect yeqown matrix")
	}
	if err = w.grid.Validate(); err != nil {
		return nil, err
	}

	return w.grid, nil
}

func yeqownLevel(lv Level) qrcode.EncodeOption {
	switch lv {
	case M:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	case Q:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	case H:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	}
}

// matrixWriter implements qrcode.Writer by copying the matrix into a Grid.
type matrixWriter struct {
	grid Grid
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	g := NewGrid(mat.Width())
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		g[y][x] = v.IsSet()
	})
	w.grid = g

	return nil
}

func (w *matrixWriter) Close() error {
	return nil
}
