package calculator

import (
	"image"
	"image/color"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/fonts/font6x8"

	"tinygo.org/x/tinyfont"
)

// Theme is the renderer palette.
type Theme struct {
	Background  color.RGBA
	DisplayBG   color.RGBA
	DisplayFG   color.RGBA
	ButtonBG    color.RGBA
	ButtonFG    color.RGBA
	ButtonArmed color.RGBA
	OperatorBG  color.RGBA
}

func DefaultTheme() Theme {
	return Theme{
		Background:  color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xFF},
		DisplayBG:   color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF},
		DisplayFG:   color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF},
		ButtonBG:    color.RGBA{R: 0x46, G: 0x48, B: 0x50, A: 0xFF},
		ButtonFG:    color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF},
		ButtonArmed: color.RGBA{R: 0x6E, G: 0x8C, B: 0xC8, A: 0xFF},
		OperatorBG:  color.RGBA{R: 0xC8, G: 0x78, B: 0x28, A: 0xFF},
	}
}

func (t *Task) render() {
	t.dirty = false
	if t.fb == nil || t.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	d := &fbDisplayer{fb: t.fb}
	bg := t.theme.Background
	d.FillRectangle(0, 0, int16(t.fb.Width()), int16(t.fb.Height()), bg)

	l := &t.layout
	fillRect(d, l.Display, t.theme.DisplayBG)
	text, scale := l.FitText(t.ctrl.Display())
	if text != "" {
		_, tw := tinyfont.LineWidth(font6x8.Font, text)
		x := l.Display.Max.X - displayPad - int(tw)*scale
		y := l.Display.Min.Y + (l.Display.Dy()-font6x8.Height*scale)/2
		t.drawText(d, x, y, scale, text, t.theme.DisplayFG)
	}

	for i := range l.Buttons {
		b := &l.Buttons[i]
		fill := t.theme.ButtonBG
		if isOperatorKey(b.Label) {
			fill = t.theme.OperatorBG
		}
		if i == t.armed {
			fill = t.theme.ButtonArmed
		}
		fillRect(d, b.Rect, fill)

		scale := l.ButtonScale
		_, tw := tinyfont.LineWidth(font6x8.Font, b.Label)
		x := b.Rect.Min.X + (b.Rect.Dx()-int(tw)*scale)/2
		y := b.Rect.Min.Y + (b.Rect.Dy()-font6x8.Height*scale)/2
		t.drawText(d, x, y, scale, b.Label, t.theme.ButtonFG)
	}

	_ = t.fb.Present()
}

func isOperatorKey(label string) bool {
	switch calc.Classify(label) {
	case calc.KeyDigit, calc.KeyUnknown:
		return false
	}
	return true
}

// drawText draws s with its top-left corner at (x, y), each font pixel
// blown up to a scale x scale block.
func (t *Task) drawText(d *fbDisplayer, x, y, scale int, s string, c color.RGBA) {
	sd := &scaledDisplayer{d: d, ox: x, oy: y, scale: scale}
	tinyfont.WriteLine(sd, font6x8.Font, 0, font6x8.Height-1, s, c)
}

func fillRect(d *fbDisplayer, r image.Rectangle, c color.RGBA) {
	_ = d.FillRectangle(int16(r.Min.X), int16(r.Min.Y), int16(r.Dx()), int16(r.Dy()), c)
}

type scaledDisplayer struct {
	d      *fbDisplayer
	ox, oy int
	scale  int
}

func (s *scaledDisplayer) Size() (x, y int16) { return s.d.Size() }

func (s *scaledDisplayer) SetPixel(x, y int16, c color.RGBA) {
	px := s.ox + int(x)*s.scale
	py := s.oy + int(y)*s.scale
	_ = s.d.FillRectangle(int16(px), int16(py), int16(s.scale), int16(s.scale), c)
}

func (s *scaledDisplayer) Display() error { return nil }

type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	_ = d.FillRectangle(x, y, 1, 1, c)
}

func (d *fbDisplayer) Display() error { return nil }

func (d *fbDisplayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
