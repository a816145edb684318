// Package tinyqrc renders QR module grids into compact SVG documents.
//
// A render call encodes the content with a SymbolEncoder, optionally clears
// ("excavates") the modules under a centred logo, merges the dark modules of
// each row into horizontal runs and emits a document with exactly two paths:
// a background square and a single foreground path. The optional logo is
// referenced with an <image> element on top.
//
//	doc, err := tinyqrc.Render("https://example.com",
//		tinyqrc.WithPixelSize(256),
//		tinyqrc.WithLogo(tinyqrc.LogoSettings{Source: "https://example.com/logo.png", Excavate: true}),
//	)
//	if err != nil {
//		return err
//	}
//	fmt.Println(doc.Markup())
//
// Rendering is pure: every call allocates its own grid, runs and markup, so a
// Renderer may be shared by any number of goroutines.
package tinyqrc
