// Package font6x8 is a 6x8 monospace bitmap font covering the characters a
// calculator face needs: digits, arithmetic signs, and the letters used by
// button labels and special values (Clear, Error, NaN, Inf).
package font6x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	Width  = 6
	Height = 8
)

// Font implements tinyfont.Fonter.
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font6x8{}

type font6x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	rows := bitmap(g.r)
	for row := 0; row < Height; row++ {
		b := rows[row]
		// Bits are stored as 0b00xxxxxx (bit5 = leftmost pixel).
		for col := 0; col < Width; col++ {
			if b&(0x20>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(7-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: Width,
		XOffset:  0,
		YOffset:  -7,
	}
}

func (f *font6x8) GetYAdvance() uint8 { return Height }

func (f *font6x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

// Has reports whether r has its own glyph; other runes draw as '?'.
func Has(r rune) bool {
	_, ok := glyphs[r]
	return ok
}

func bitmap(r rune) [Height]byte {
	if rows, ok := glyphs[r]; ok {
		return rows
	}
	return glyphs['?']
}
