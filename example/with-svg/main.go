package main

import (
	"os"

	"github.com/Mictilt/tinyqrc"
)

func save(path string, doc *tinyqrc.Document) {
	fd, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer fd.Close()

	if _, err = doc.WriteTo(fd); err != nil {
		panic(err)
	}
}

func main() {
	const content = "https://github.com/Mictilt/tinyqrc"

	// defaults: 128px, level L, black on white, 2 module margin
	doc, err := tinyqrc.Render(content)
	if err != nil {
		panic(err)
	}
	save("./qrcode.svg", doc)

	// You can also customize colors for SVG output
	doc, err = tinyqrc.Render(content,
		tinyqrc.WithPixelSize(256),
		tinyqrc.WithForegroundColor("#FF0000"), // Red QR code
		tinyqrc.WithBackgroundColor("#FFFFFF"), // White background
	)
	if err != nil {
		panic(err)
	}
	save("./qrcode_colored.svg", doc)

	// wider quiet zone, stronger error correction and extra root attributes
	doc, err = tinyqrc.Render(content,
		tinyqrc.WithLevel(tinyqrc.LevelH),
		tinyqrc.WithMargin(4),
		tinyqrc.WithAttribute("class", "qr"),
		tinyqrc.WithAttribute("data-campaign", "spring"),
	)
	if err != nil {
		panic(err)
	}
	save("./qrcode_attrs.svg", doc)

	println("SVG files created successfully!")
}
