package tinyqrc

import (
	"math"
	"net/url"
	"regexp"
	"strings"

	"github.com/Mictilt/tinyqrc/symbol"
)

// Level is the error correction level requested from the encoder.
type Level = symbol.Level

// Error correction levels, weakest first.
const (
	LevelL = symbol.L
	LevelM = symbol.M
	LevelQ = symbol.Q
	LevelH = symbol.H
)

const (
	// DefaultPixelSize is the default output side length in pixels.
	DefaultPixelSize = 128
	// DefaultLevel is the default error correction level.
	DefaultLevel = symbol.L
	// DefaultBackgroundColor is the default light module colour.
	DefaultBackgroundColor = "#FFFFFF"
	// DefaultForegroundColor is the default dark module colour.
	DefaultForegroundColor = "#000000"
	// DefaultMargin is the default quiet zone, in modules.
	DefaultMargin = 2
	// DefaultLogoScale is the logo footprint, relative to the pixel size,
	// used when the logo width or height is not given.
	DefaultLogoScale = 0.1
)

// RenderOptions describes one render call.
type RenderOptions struct {
	// Content is the text encoded into the symbol. Required.
	Content string
	// PixelSize is the declared width and height of the document.
	PixelSize int
	// Level is the requested error correction level. It is raised to Q when
	// the logo excavates modules.
	Level Level
	// BackgroundColor and ForegroundColor accept CSS colours.
	BackgroundColor string
	ForegroundColor string
	// Margin is the quiet zone around the symbol, in modules.
	Margin int
	// Logo is optional.
	Logo *LogoSettings
	// Attributes are copied onto the <svg> element in order. Names must be
	// on the allow-list, see AllowedAttribute.
	Attributes []Attr
}

// LogoSettings places an image over the symbol.
//
// Width and Height are in output pixels and default to DefaultLogoScale of
// the pixel size. X and Y are in modules, measured from the top-left module
// of the symbol (the margin is not included); when nil the logo is centred.
type LogoSettings struct {
	// Source is the image reference written into the document: a path,
	// including Windows drive paths, an http(s) URL or a data:image URI. It
	// is not fetched by the renderer.
	Source   string
	Width    *float64
	Height   *float64
	X        *float64
	Y        *float64
	Excavate bool
}

// Float returns a pointer to v, for the optional LogoSettings fields.
func Float(v float64) *float64 {
	return &v
}

// Attr is one pass-through attribute of the document root.
type Attr struct {
	Name  string
	Value string
}

// DefaultOptions returns a fresh RenderOptions holding the defaults and no
// content.
func DefaultOptions() RenderOptions {
	return RenderOptions{
		PixelSize:       DefaultPixelSize,
		Level:           DefaultLevel,
		BackgroundColor: DefaultBackgroundColor,
		ForegroundColor: DefaultForegroundColor,
		Margin:          DefaultMargin,
	}
}

// NewOptions applies opts to the defaults.
func NewOptions(content string, opts ...Option) RenderOptions {
	o := DefaultOptions()
	o.Content = content
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&o)
	}

	return o
}

// Option customises RenderOptions.
type Option interface {
	apply(o *RenderOptions)
}

// funcOption wraps a function that modifies RenderOptions into an
// implementation of the Option interface.
type funcOption struct {
	f func(o *RenderOptions)
}

func (fo *funcOption) apply(o *RenderOptions) {
	fo.f(o)
}

func newFuncOption(f func(o *RenderOptions)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithPixelSize sets the output width and height in pixels.
func WithPixelSize(px int) Option {
	return newFuncOption(func(o *RenderOptions) {
		o.PixelSize = px
	})
}

// WithLevel sets the requested error correction level.
func WithLevel(lv Level) Option {
	return newFuncOption(func(o *RenderOptions) {
		o.Level = lv
	})
}

// WithBackgroundColor sets the background colour. An empty string keeps the
// current value.
func WithBackgroundColor(c string) Option {
	return newFuncOption(func(o *RenderOptions) {
		if c == "" {
			return
		}

		o.BackgroundColor = c
	})
}

// WithForegroundColor sets the module colour. An empty string keeps the
// current value.
func WithForegroundColor(c string) Option {
	return newFuncOption(func(o *RenderOptions) {
		if c == "" {
			return
		}

		o.ForegroundColor = c
	})
}

// WithMargin sets the quiet zone width in modules.
func WithMargin(modules int) Option {
	return newFuncOption(func(o *RenderOptions) {
		o.Margin = modules
	})
}

// WithLogo places a logo over the symbol.
func WithLogo(logo LogoSettings) Option {
	return newFuncOption(func(o *RenderOptions) {
		o.Logo = &logo
	})
}

// WithAttribute appends a pass-through attribute for the document root.
func WithAttribute(name, value string) Option {
	return newFuncOption(func(o *RenderOptions) {
		o.Attributes = append(o.Attributes, Attr{Name: name, Value: value})
	})
}

var cssColorPattern = regexp.MustCompile(
	`^(#[0-9a-fA-F]{3,4}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{8}|[a-zA-Z]+|(rgb|rgba|hsl|hsla)\([0-9.,%\s/+-]+\))$`)

// Validate reports the first invalid field as an *OptionError.
func (o RenderOptions) Validate() error {
	if o.Content == "" {
		return invalid("content", "must not be empty")
	}
	if o.PixelSize <= 0 {
		return invalid("pixelSize", "must be positive, got %d", o.PixelSize)
	}
	if o.Margin < 0 {
		return invalid("margin", "must not be negative, got %d", o.Margin)
	}
	if !o.Level.Valid() {
		return invalid("level", "unknown level %s", o.Level)
	}
	if !cssColorPattern.MatchString(o.BackgroundColor) {
		return invalid("backgroundColor", "%q is not a CSS colour", o.BackgroundColor)
	}
	if !cssColorPattern.MatchString(o.ForegroundColor) {
		return invalid("foregroundColor", "%q is not a CSS colour", o.ForegroundColor)
	}
	if o.Logo != nil {
		if err := o.Logo.validate(); err != nil {
			return err
		}
	}

	return validateAttributes(o.Attributes)
}

func (l *LogoSettings) validate() error {
	if err := validateSource(l.Source); err != nil {
		return err
	}

	for _, f := range []struct {
		name string
		v    *float64
	}{{"logo.width", l.Width}, {"logo.height", l.Height}} {
		if f.v == nil {
			continue
		}
		if math.IsNaN(*f.v) || math.IsInf(*f.v, 0) || *f.v <= 0 {
			return invalid(f.name, "must be a positive number of pixels, got %v", *f.v)
		}
	}

	for _, f := range []struct {
		name string
		v    *float64
	}{{"logo.x", l.X}, {"logo.y", l.Y}} {
		if f.v == nil {
			continue
		}
		if math.IsNaN(*f.v) || math.IsInf(*f.v, 0) || *f.v < 0 {
			return invalid(f.name, "must be a non-negative number of modules, got %v", *f.v)
		}
	}

	return nil
}

var windowsPath = regexp.MustCompile(`^[a-zA-Z]:[\\/]`)

func validateSource(src string) error {
	if strings.TrimSpace(src) == "" {
		return invalid("logo.source", "must not be empty")
	}

	if windowsPath.MatchString(src) {
		return nil
	}

	u, err := url.Parse(src)
	if err != nil {
		return invalid("logo.source", "%v", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https":
		return nil
	case "data":
		if strings.HasPrefix(strings.ToLower(u.Opaque), "image/") {
			return nil
		}
		return invalid("logo.source", "data URI must carry an image media type")
	}

	return invalid("logo.source", "scheme %q is not allowed", u.Scheme)
}
