package main

import (
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"github.com/Mictilt/tinyqrc"
)

// cellsPerModule keeps modules roughly square in a terminal.
const cellsPerModule = 2

// preview draws doc in the terminal and waits for a key press.
func preview(doc *tinyqrc.Document, content string) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer termbox.Close()

	width, _ := termbox.Size()
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return errors.Wrap(err, "clear terminal")
	}

	n := doc.ViewBox
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			bg := termbox.ColorWhite
			if previewDark(doc, x, y) {
				bg = termbox.ColorBlack
			}
			for i := 0; i < cellsPerModule; i++ {
				termbox.SetCell(x*cellsPerModule+i, y, ' ', termbox.ColorDefault, bg)
			}
		}
	}

	col := 0
	for _, r := range caption(content, width) {
		termbox.SetCell(col, n+1, r, termbox.ColorDefault, termbox.ColorDefault)
		col += runewidth.RuneWidth(r)
	}
	if err := termbox.Flush(); err != nil {
		return errors.Wrap(err, "flush terminal")
	}

	for {
		if ev := termbox.PollEvent(); ev.Type == termbox.EventKey || ev.Type == termbox.EventError {
			return nil
		}
	}
}

// previewDark reports whether the module at (x, y) of the document, margin
// included, is dark. Logo regions excavated from the grid show as light.
func previewDark(doc *tinyqrc.Document, x, y int) bool {
	return doc.Modules.Dark(x-doc.Margin, y-doc.Margin)
}

// caption fits content into width terminal columns.
func caption(content string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(content) <= width {
		return content
	}

	return runewidth.Truncate(content, width, "...")
}
