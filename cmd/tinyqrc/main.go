// Command tinyqrc renders QR codes as SVG, PNG or JPEG.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Mictilt/tinyqrc"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "tinyqrc",
		Usage:     "render text as a QR code",
		ArgsUsage: "<content | ->",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Value:   tinyqrc.DefaultPixelSize,
				Usage:   "declared output size in pixels",
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Value:   tinyqrc.DefaultLevel.String(),
				Usage:   "error correction level: L, M, Q or H",
			},
			&cli.StringFlag{
				Name:  "fg",
				Value: tinyqrc.DefaultForegroundColor,
				Usage: "foreground colour",
			},
			&cli.StringFlag{
				Name:  "bg",
				Value: tinyqrc.DefaultBackgroundColor,
				Usage: "background colour",
			},
			&cli.IntFlag{
				Name:    "margin",
				Aliases: []string{"m"},
				Value:   tinyqrc.DefaultMargin,
				Usage:   "quiet zone in modules",
			},
			&cli.StringFlag{
				Name:  "logo",
				Usage: "logo source: file path, http(s) URL or data:image URI",
			},
			&cli.Float64Flag{
				Name:  "logo-size",
				Usage: "logo width and height in pixels (default size/4)",
			},
			&cli.Float64Flag{
				Name:  "logo-x",
				Usage: "logo left edge in modules (default centred)",
			},
			&cli.Float64Flag{
				Name:  "logo-y",
				Usage: "logo top edge in modules (default centred)",
			},
			&cli.BoolFlag{
				Name:  "no-excavate",
				Usage: "overlay the logo without clearing modules beneath it",
			},
			&cli.StringSliceFlag{
				Name:  "attr",
				Usage: "extra root attribute as name=value, repeatable",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "svg",
				Usage:   "output format: svg, png or jpeg",
			},
			&cli.IntFlag{
				Name:  "raster-size",
				Usage: "bitmap side in pixels for png and jpeg (default --size)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file, stdout when empty or -",
			},
			&cli.StringFlag{
				Name:  "encoder",
				Usage: "symbol encoder backend: yeqown, skip2 or rsc",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "HCL file with render defaults",
			},
			&cli.BoolFlag{
				Name:  "preview",
				Usage: "show the symbol in the terminal",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: "text",
				Usage: "text or json",
			},
		},
		Action: run,
	}
}
