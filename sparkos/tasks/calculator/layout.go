package calculator

import (
	"image"

	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/fonts/font6x8"
)

const (
	gridCols = 4
	gridRows = 5

	margin = 10
	gap    = 10

	displayPad   = 6
	maxTextScale = 4
)

// Button is one grid cell.
type Button struct {
	Label string
	Rect  image.Rectangle
}

// Layout places the display field above a 5x4 button grid with 10px gaps.
type Layout struct {
	Display      image.Rectangle
	DisplayScale int
	Buttons      [len(calc.Labels)]Button
	ButtonScale  int
}

// NewLayout computes the layout for a w x h framebuffer.
// It reports false when the frame is too small for a usable grid.
func NewLayout(w, h int) (Layout, bool) {
	var l Layout

	dispH := h / 8
	if dispH < font6x8.Height+2*displayPad {
		dispH = font6x8.Height + 2*displayPad
	}
	l.Display = image.Rect(margin, margin, w-margin, margin+dispH)

	gridTop := l.Display.Max.Y + gap
	gridW := w - 2*margin
	gridH := h - margin - gridTop
	cellW := (gridW - (gridCols-1)*gap) / gridCols
	cellH := (gridH - (gridRows-1)*gap) / gridRows
	if cellW < font6x8.Width || cellH < font6x8.Height || l.Display.Dx() <= 2*displayPad {
		return Layout{}, false
	}

	l.ButtonScale = maxTextScale
	for i, label := range calc.Labels {
		row := i / gridCols
		col := i % gridCols
		x0 := margin + col*(cellW+gap)
		y0 := gridTop + row*(cellH+gap)
		l.Buttons[i] = Button{Label: label, Rect: image.Rect(x0, y0, x0+cellW, y0+cellH)}
		if s := fitScale(label, cellW-4, cellH/2); s < l.ButtonScale {
			l.ButtonScale = s
		}
	}

	l.DisplayScale = (dispH - 2*displayPad) / font6x8.Height
	if l.DisplayScale > maxTextScale {
		l.DisplayScale = maxTextScale
	}
	if l.DisplayScale < 1 {
		l.DisplayScale = 1
	}
	return l, true
}

// fitScale is the largest glyph scale (at least 1) at which s fits w x h.
func fitScale(s string, w, h int) int {
	n := len(s)
	if n == 0 {
		return maxTextScale
	}
	scale := w / (n * font6x8.Width)
	if hs := h / font6x8.Height; hs < scale {
		scale = hs
	}
	if scale > maxTextScale {
		scale = maxTextScale
	}
	if scale < 1 {
		scale = 1
	}
	return scale
}

// HitTest returns the index of the button containing (x, y).
func (l *Layout) HitTest(x, y int) (int, bool) {
	p := image.Pt(x, y)
	for i := range l.Buttons {
		if p.In(l.Buttons[i].Rect) {
			return i, true
		}
	}
	return -1, false
}

// FitText picks the largest scale, up to DisplayScale, at which text fits
// the display field. Text that does not fit even at scale 1 is clipped on
// the left so the least significant digits stay visible.
func (l *Layout) FitText(text string) (string, int) {
	inner := l.Display.Dx() - 2*displayPad
	for scale := l.DisplayScale; scale >= 1; scale-- {
		if len(text)*font6x8.Width*scale <= inner {
			return text, scale
		}
	}
	maxChars := inner / font6x8.Width
	if maxChars <= 0 {
		return "", 1
	}
	return text[len(text)-maxChars:], 1
}
