package main

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"os"

	"github.com/fogleman/gg"

	"github.com/Mictilt/tinyqrc"
)

// logoDataURI draws a small badge and returns it as a PNG data URI.
func logoDataURI() string {
	dc := gg.NewContext(64, 64)
	dc.SetHexColor("#0066CC")
	dc.DrawCircle(32, 32, 30)
	dc.Fill()
	dc.SetHexColor("#FFFFFF")
	dc.DrawCircle(32, 32, 14)
	dc.Fill()

	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, dc.Image()); err != nil {
		panic(err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func main() {
	logo := logoDataURI()

	// Excavated logo: the level is raised to Q and the modules beneath the
	// logo are cleared.
	doc, err := tinyqrc.Render("https://github.com/Mictilt/tinyqrc",
		tinyqrc.WithPixelSize(512),
		tinyqrc.WithLogo(tinyqrc.LogoSettings{
			Source:   logo,
			Width:    tinyqrc.Float(128),
			Height:   tinyqrc.Float(128),
			Excavate: true,
		}),
	)
	if err != nil {
		panic(err)
	}
	println("encoded at level", doc.Level.String())

	if err = os.WriteFile("./qrcode_with_logo.svg", doc.Bytes(), 0o644); err != nil {
		panic(err)
	}

	// Overlay only: modules stay, the requested level is kept.
	doc, err = tinyqrc.Render("https://github.com/Mictilt/tinyqrc",
		tinyqrc.WithPixelSize(512),
		tinyqrc.WithLevel(tinyqrc.LevelH),
		tinyqrc.WithLogo(tinyqrc.LogoSettings{Source: logo}),
	)
	if err != nil {
		panic(err)
	}
	if err = os.WriteFile("./qrcode_overlay.svg", doc.Bytes(), 0o644); err != nil {
		panic(err)
	}
}
