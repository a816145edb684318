package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mictilt/tinyqrc"
	"github.com/Mictilt/tinyqrc/symbol"
)

const sample = `
render {
  size       = 256
  level      = "m"
  foreground = "#1f2937"
  background = "#ffffff"
  margin     = 4
  encoder    = "skip2"
  attributes = {
    class       = "qr"
    "data-kind" = "badge"
  }
}

logo {
  source = "logo.png"
  width  = 48
  x      = 1.5
}
`

func writeConfig(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tinyqrc.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	f, err := Load(writeConfig(t, sample))
	require.NoError(t, err)
	require.NotNil(t, f.Render)
	require.NotNil(t, f.Logo)

	opts, err := f.Options()
	require.NoError(t, err)

	o := tinyqrc.NewOptions("HELLO", opts...)
	assert.Equal(t, 256, o.PixelSize)
	assert.Equal(t, tinyqrc.LevelM, o.Level)
	assert.Equal(t, "#1f2937", o.ForegroundColor)
	assert.Equal(t, "#ffffff", o.BackgroundColor)
	assert.Equal(t, 4, o.Margin)
	assert.Equal(t, []tinyqrc.Attr{
		{Name: "class", Value: "qr"},
		{Name: "data-kind", Value: "badge"},
	}, o.Attributes)

	require.NotNil(t, o.Logo)
	assert.Equal(t, "logo.png", o.Logo.Source)
	assert.Equal(t, 48.0, *o.Logo.Width)
	assert.Equal(t, 64.0, *o.Logo.Height)
	assert.Equal(t, 1.5, *o.Logo.X)
	assert.True(t, o.Logo.Excavate)
	require.NoError(t, o.Validate())

	b, err := f.Backend()
	require.NoError(t, err)
	assert.Equal(t, symbol.BackendSkip2, b)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil, "empty.hcl")
	require.NoError(t, err)

	opts, err := f.Options()
	require.NoError(t, err)
	assert.Empty(t, opts)
	assert.Equal(t, tinyqrc.DefaultOptions(), tinyqrc.NewOptions("", opts...))

	b, err := f.Backend()
	require.NoError(t, err)
	assert.Equal(t, symbol.BackendYeqown, b)
}

func TestParse_LogoOverlay(t *testing.T) {
	f, err := Parse([]byte(`logo {
  source   = "data:image/png;base64,AAAA"
  excavate = false
}`), "overlay.hcl")
	require.NoError(t, err)

	opts, err := f.Options()
	require.NoError(t, err)

	o := tinyqrc.NewOptions("x", opts...)
	require.NotNil(t, o.Logo)
	assert.False(t, o.Logo.Excavate)
}

func TestParse_Errors(t *testing.T) {
	for name, src := range map[string]string{
		"syntax":        `render {`,
		"unknown block": `output { path = "x" }`,
		"unknown attr":  `render { colour = "red" }`,
		"wrong type":    `render { size = "big" }`,
		"missing src":   `logo { width = 2 }`,
	} {
		_, err := Parse([]byte(src), name+".hcl")
		assert.Error(t, err, name)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestOptions_InvalidValues(t *testing.T) {
	f, err := Parse([]byte(`render { level = "X" }`), "level.hcl")
	require.NoError(t, err)
	_, err = f.Options()
	assert.Error(t, err)

	f, err = Parse([]byte(`render { encoder = "zxing" }`), "encoder.hcl")
	require.NoError(t, err)
	_, err = f.Backend()
	assert.Error(t, err)
}

func TestParse_Env(t *testing.T) {
	t.Setenv("TINYQRC_TEST_FG", "#00ff00")

	f, err := Parse([]byte(`render {
  foreground = env.TINYQRC_TEST_FG
}`), "env.hcl")
	require.NoError(t, err)

	opts, err := f.Options()
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", tinyqrc.NewOptions("x", opts...).ForegroundColor)

	_, err = Parse([]byte(`render { foreground = env.TINYQRC_TEST_UNSET_VARIABLE }`), "unset.hcl")
	assert.Error(t, err)
}

func TestLogoSettings_DefaultFootprint(t *testing.T) {
	f, err := Parse([]byte(`logo { source = "logo.png" }`), "logo.hcl")
	require.NoError(t, err)

	opts, err := f.Options()
	require.NoError(t, err)
	o := tinyqrc.NewOptions("x", opts...)
	require.NotNil(t, o.Logo)
	assert.Equal(t, float64(tinyqrc.DefaultPixelSize)/4, *o.Logo.Width)
	assert.Equal(t, float64(tinyqrc.DefaultPixelSize)/4, *o.Logo.Height)
	assert.True(t, o.Logo.Excavate)

	logo := f.LogoSettings(400)
	assert.Equal(t, 100.0, *logo.Width)
	assert.Equal(t, 100.0, *logo.Height)

	assert.Nil(t, (&File{}).LogoSettings(400))
}
