// Package raster draws tinyqrc documents into bitmaps and encodes them as PNG
// or JPEG.
//
// Rasterize works from the document's runs rather than its markup, so no SVG
// parser is involved. Module edges are snapped to whole pixels, which keeps
// the output as crisp as the vector form.
package raster
