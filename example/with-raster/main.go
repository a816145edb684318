package main

import (
	"os"

	"github.com/Mictilt/tinyqrc"
	"github.com/Mictilt/tinyqrc/raster"
	"github.com/Mictilt/tinyqrc/symbol"
)

func main() {
	// rsc.io/qr backend instead of the default encoder
	enc, err := symbol.NewEncoder(symbol.BackendRSC)
	if err != nil {
		panic(err)
	}

	doc, err := tinyqrc.NewRenderer(enc).Render(tinyqrc.NewOptions("https://github.com/Mictilt/tinyqrc",
		tinyqrc.WithForegroundColor("#0066CC"),
		tinyqrc.WithBackgroundColor("transparent"),
	))
	if err != nil {
		panic(err)
	}

	img, err := raster.Rasterize(doc, raster.WithSize(740))
	if err != nil {
		panic(err)
	}

	for path, format := range map[string]raster.Format{
		"./qrcode.png": raster.PNG,
		// transparency is flattened onto white
		"./qrcode.jpeg": raster.JPEG,
	} {
		fd, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		if err = raster.Encode(fd, img, format); err != nil {
			panic(err)
		}
		_ = fd.Close()
	}
}
