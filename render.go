package tinyqrc

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/Mictilt/tinyqrc/symbol"
)

// SymbolEncoder maps content and an error correction level to a margin-less
// module grid. It fails with an error matching ErrEncodingCapacityExceeded
// when the content does not fit. The backends in package symbol implement it.
type SymbolEncoder interface {
	Encode(content string, level Level) (symbol.Grid, error)
}

// Renderer turns RenderOptions into documents. The zero value is not usable;
// call NewRenderer. A Renderer holds no mutable state.
type Renderer struct {
	encoder SymbolEncoder
}

// NewRenderer returns a Renderer backed by enc, or by the default symbol
// encoder when enc is nil.
func NewRenderer(enc SymbolEncoder) *Renderer {
	if enc == nil {
		enc = symbol.DefaultEncoder()
	}

	return &Renderer{encoder: enc}
}

var defaultRenderer = NewRenderer(nil)

// Render encodes content with the default encoder, applying opts to the
// defaults.
func Render(content string, opts ...Option) (*Document, error) {
	return defaultRenderer.Render(NewOptions(content, opts...))
}

// EffectiveLevel returns the level handed to the encoder. Excavating logos
// destroy data modules, so L and M are raised to Q for them.
func EffectiveLevel(requested Level, logo *LogoSettings) Level {
	if logo != nil && logo.Excavate && (requested == symbol.L || requested == symbol.M) {
		return symbol.Q
	}

	return requested
}

// Render validates o, encodes the content and assembles the document. Errors
// from the encoder are returned as they are; no document is produced on any
// error.
func (r *Renderer) Render(o RenderOptions) (*Document, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	log := Logger()
	level := EffectiveLevel(o.Level, o.Logo)
	if level != o.Level {
		log.Debug("raised error correction level for excavated logo",
			slog.String("requested", o.Level.String()),
			slog.String("effective", level.String()))
	}

	grid, err := r.encoder.Encode(o.Content, level)
	if err != nil {
		return nil, err
	}
	if err = grid.Validate(); err != nil {
		return nil, errors.Wrap(err, "encoder returned a malformed grid")
	}

	n := grid.Size()
	total := n + 2*o.Margin
	log.Debug("encoded symbol",
		slog.Int("modules", n),
		slog.Int("withMargin", total),
		slog.String("level", level.String()))

	doc := &Document{
		Width:      o.PixelSize,
		Height:     o.PixelSize,
		ViewBox:    total,
		Margin:     o.Margin,
		Level:      level,
		Background: o.BackgroundColor,
		Foreground: o.ForegroundColor,
		attrs:      append([]Attr(nil), o.Attributes...),
	}

	if p := ComputePlacement(n, o.PixelSize, o.Logo); p != nil {
		if p.Excavation != nil {
			grid = Excavate(grid, *p.Excavation)
			log.Debug("excavated modules under logo",
				slog.Int("x", p.Excavation.X), slog.Int("y", p.Excavation.Y),
				slog.Int("w", p.Excavation.W), slog.Int("h", p.Excavation.H))
		}
		doc.Logo = newLogoPlacement(o.Logo.Source, p, o.Margin, doc.PixelRatio())
	}

	doc.Modules = grid
	doc.Runs = Compress(grid, o.Margin)
	log.Debug("compressed modules", slog.Int("runs", len(doc.Runs)))

	doc.markup = doc.assemble()

	return doc, nil
}
