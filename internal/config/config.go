package config

import (
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"github.com/Mictilt/tinyqrc"
	"github.com/Mictilt/tinyqrc/symbol"
)

// File is the decoded form of a config file.
type File struct {
	Render *Render `hcl:"render,block"`
	Logo   *Logo   `hcl:"logo,block"`
}

// Render holds render defaults. Unset fields keep the library defaults.
type Render struct {
	Size       *int              `hcl:"size,optional"`
	Level      *string           `hcl:"level,optional"`
	Foreground *string           `hcl:"foreground,optional"`
	Background *string           `hcl:"background,optional"`
	Margin     *int              `hcl:"margin,optional"`
	Encoder    *string           `hcl:"encoder,optional"`
	Attributes map[string]string `hcl:"attributes,optional"`
}

// Logo mirrors tinyqrc.LogoSettings. Width and height are output pixels and
// default to a quarter of the render size, x and y are modules from the
// top-left of the symbol.
type Logo struct {
	Source   string   `hcl:"source"`
	Width    *float64 `hcl:"width,optional"`
	Height   *float64 `hcl:"height,optional"`
	X        *float64 `hcl:"x,optional"`
	Y        *float64 `hcl:"y,optional"`
	Excavate *bool    `hcl:"excavate,optional"`
}

// Load parses and decodes the HCL file at path.
func Load(path string) (*File, error) {
	hclFile, diags := hclparse.NewParser().ParseHCLFile(path)
	return decode(hclFile, diags, path)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	return decode(hclFile, diags, filename)
}

func decode(hclFile *hcl.File, diags hcl.Diagnostics, name string) (*File, error) {
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse config %s", name)
	}

	var f File
	if diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &f); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode config %s", name)
	}

	return &f, nil
}

// evalContext exposes the process environment as env.NAME.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" || !utf8.ValidString(value) {
			continue
		}
		env[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}

// Options converts the file into render options. The returned slice is meant
// to be applied before any command line overrides.
func (f *File) Options() ([]tinyqrc.Option, error) {
	var opts []tinyqrc.Option

	if r := f.Render; r != nil {
		if r.Size != nil {
			opts = append(opts, tinyqrc.WithPixelSize(*r.Size))
		}
		if r.Level != nil {
			lv, err := symbol.ParseLevel(*r.Level)
			if err != nil {
				return nil, errors.Wrap(err, "render.level")
			}
			opts = append(opts, tinyqrc.WithLevel(lv))
		}
		if r.Foreground != nil {
			opts = append(opts, tinyqrc.WithForegroundColor(*r.Foreground))
		}
		if r.Background != nil {
			opts = append(opts, tinyqrc.WithBackgroundColor(*r.Background))
		}
		if r.Margin != nil {
			opts = append(opts, tinyqrc.WithMargin(*r.Margin))
		}

		names := make([]string, 0, len(r.Attributes))
		for name := range r.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			opts = append(opts, tinyqrc.WithAttribute(name, r.Attributes[name]))
		}
	}

	if f.Logo != nil {
		size := tinyqrc.NewOptions("", opts...).PixelSize
		opts = append(opts, tinyqrc.WithLogo(*f.LogoSettings(size)))
	}

	return opts, nil
}

// LogoSettings converts the logo block, or returns nil when there is none.
// A missing width or height defaults to a quarter of pixelSize, and
// excavation defaults to on.
func (f *File) LogoSettings(pixelSize int) *tinyqrc.LogoSettings {
	l := f.Logo
	if l == nil {
		return nil
	}

	footprint := tinyqrc.Float(float64(pixelSize) / 4)
	logo := &tinyqrc.LogoSettings{
		Source:   l.Source,
		Width:    l.Width,
		Height:   l.Height,
		X:        l.X,
		Y:        l.Y,
		Excavate: true,
	}
	if logo.Width == nil {
		logo.Width = footprint
	}
	if logo.Height == nil {
		logo.Height = footprint
	}
	if l.Excavate != nil {
		logo.Excavate = *l.Excavate
	}

	return logo
}

// Backend returns the configured encoder backend, or the default when unset.
func (f *File) Backend() (symbol.Backend, error) {
	if f.Render == nil || f.Render.Encoder == nil {
		return symbol.ParseBackend("")
	}

	b, err := symbol.ParseBackend(*f.Render.Encoder)
	return b, errors.Wrap(err, "render.encoder")
}
