package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/Mictilt/tinyqrc"
	"github.com/Mictilt/tinyqrc/internal/config"
	"github.com/Mictilt/tinyqrc/raster"
	"github.com/Mictilt/tinyqrc/symbol"
)

const (
	exitRender = 1
	exitUsage  = 2
)

func usageError(err error) error {
	return cli.Exit(err.Error(), exitUsage)
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.String("log-level"), c.String("log-format"), c.App.ErrWriter)
	if err != nil {
		return usageError(err)
	}
	tinyqrc.SetLogger(logger)
	defer tinyqrc.SetLogger(nil)

	content, err := readContent(c)
	if err != nil {
		return usageError(err)
	}

	opts, backend, err := buildOptions(c)
	if err != nil {
		return usageError(err)
	}

	format := strings.ToLower(c.String("format"))
	var rasterFormat raster.Format
	if format != "svg" {
		if rasterFormat, err = raster.ParseFormat(format); err != nil {
			return usageError(err)
		}
	}

	enc, err := symbol.NewEncoder(backend)
	if err != nil {
		return usageError(err)
	}

	doc, err := tinyqrc.NewRenderer(enc).Render(tinyqrc.NewOptions(content, opts...))
	if err != nil {
		if errors.Is(err, tinyqrc.ErrInvalidOptions) {
			return usageError(err)
		}
		return cli.Exit(err.Error(), exitRender)
	}
	logger.Info("rendered",
		slog.String("level", doc.Level.String()),
		slog.Int("viewBox", doc.ViewBox),
		slog.Int("runs", len(doc.Runs)))

	if c.Bool("preview") {
		if err = preview(doc, content); err != nil {
			return cli.Exit(err.Error(), exitRender)
		}
	}

	out, closeOut, err := openOutput(c)
	if err != nil {
		return cli.Exit(err.Error(), exitRender)
	}
	defer closeOut()

	if format == "svg" {
		_, err = doc.WriteTo(out)
	} else {
		err = writeRaster(out, doc, rasterFormat, c.Int("raster-size"))
	}
	if err != nil {
		return cli.Exit(err.Error(), exitRender)
	}

	return nil
}

func readContent(c *cli.Context) (string, error) {
	switch c.NArg() {
	case 0:
		return "", errors.New("missing content argument")
	case 1:
	default:
		return "", errors.Errorf("expected one content argument, got %d", c.NArg())
	}

	content := c.Args().First()
	if content != "-" {
		return content, nil
	}

	raw, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", errors.Wrap(err, "read content from stdin")
	}

	return strings.TrimRight(string(raw), "\r\n"), nil
}

// buildOptions layers the config file, then explicitly set flags, over the
// library defaults.
func buildOptions(c *cli.Context) ([]tinyqrc.Option, symbol.Backend, error) {
	var (
		opts    []tinyqrc.Option
		backend symbol.Backend
		file    *config.File
		err     error
	)

	if path := c.String("config"); path != "" {
		f, err := config.Load(path)
		if err != nil {
			return nil, "", err
		}
		file = f
		if opts, err = f.Options(); err != nil {
			return nil, "", err
		}
		if backend, err = f.Backend(); err != nil {
			return nil, "", err
		}
	}

	if c.IsSet("encoder") || backend == "" {
		if backend, err = symbol.ParseBackend(c.String("encoder")); err != nil {
			return nil, "", err
		}
	}

	if c.IsSet("size") {
		opts = append(opts, tinyqrc.WithPixelSize(c.Int("size")))
	}
	if c.IsSet("level") {
		lv, err := symbol.ParseLevel(c.String("level"))
		if err != nil {
			return nil, "", err
		}
		opts = append(opts, tinyqrc.WithLevel(lv))
	}
	if c.IsSet("fg") {
		opts = append(opts, tinyqrc.WithForegroundColor(c.String("fg")))
	}
	if c.IsSet("bg") {
		opts = append(opts, tinyqrc.WithBackgroundColor(c.String("bg")))
	}
	if c.IsSet("margin") {
		opts = append(opts, tinyqrc.WithMargin(c.Int("margin")))
	}

	for _, kv := range c.StringSlice("attr") {
		name, value, err := parseAttr(kv)
		if err != nil {
			return nil, "", err
		}
		opts = append(opts, tinyqrc.WithAttribute(name, value))
	}

	pixelSize := tinyqrc.NewOptions("", opts...).PixelSize
	switch src := c.String("logo"); {
	case src != "":
		opts = append(opts, logoOption(c, src, float64(pixelSize)/4))
	case file != nil && file.Logo != nil && c.IsSet("size"):
		// re-derive the config logo's default footprint from --size
		opts = append(opts, tinyqrc.WithLogo(*file.LogoSettings(pixelSize)))
	}

	return opts, backend, nil
}

// logoOption builds the logo settings; size is the footprint used when
// --logo-size is unset.
func logoOption(c *cli.Context, src string, size float64) tinyqrc.Option {
	if c.IsSet("logo-size") {
		size = c.Float64("logo-size")
	}

	logo := tinyqrc.LogoSettings{
		Source:   src,
		Width:    tinyqrc.Float(size),
		Height:   tinyqrc.Float(size),
		Excavate: !c.Bool("no-excavate"),
	}
	if c.IsSet("logo-x") {
		logo.X = tinyqrc.Float(c.Float64("logo-x"))
	}
	if c.IsSet("logo-y") {
		logo.Y = tinyqrc.Float(c.Float64("logo-y"))
	}

	return tinyqrc.WithLogo(logo)
}

// parseAttr splits a name=value pair. The value may be empty or contain '='.
func parseAttr(kv string) (name, value string, err error) {
	name, value, ok := strings.Cut(kv, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", errors.Errorf("attribute %q is not name=value", kv)
	}

	return name, value, nil
}

func openOutput(c *cli.Context) (io.Writer, func(), error) {
	path := c.String("output")
	if path == "" || path == "-" {
		return c.App.Writer, func() {}, nil
	}

	fd, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "create %s", path)
	}

	return fd, func() { _ = fd.Close() }, nil
}

func writeRaster(w io.Writer, doc *tinyqrc.Document, f raster.Format, size int) error {
	var opts []raster.Option
	if size > 0 {
		opts = append(opts, raster.WithSize(size))
	}

	img, err := raster.Rasterize(doc, opts...)
	if err != nil {
		return err
	}

	return raster.Encode(w, img, f)
}
