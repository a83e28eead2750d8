//go:build cgo

package hal

import (
	"sparkcalc/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// WindowOptions configures the desktop window.
type WindowOptions struct {
	Title  string
	Width  int
	Height int
	Scale  int
	TPS    int
	Logger *zap.Logger
}

// RunWindow starts a desktop window that displays the framebuffer and forwards pointer input.
// It blocks until the window closes.
func RunWindow(opts WindowOptions, newApp func(HAL) func() error) error {
	h := newHost(HostOptions{Width: opts.Width, Height: opts.Height, Logger: opts.Logger})
	step := newApp(h)

	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(opts.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*opts.Scale, h.fb.height*opts.Scale)
	ebiten.SetTPS(opts.TPS)
	h.logger.Info("window open",
		zap.Int("width", h.fb.width),
		zap.Int("height", h.fb.height),
		zap.Int("scale", opts.Scale),
		zap.Int("tps", opts.TPS),
	)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	drawn   uint64
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.ptr.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.scratch = make([]byte, fb.width*fb.height*4)
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.drawn = 0
	}

	if frames := fb.snapshotRGBA(g.scratch); frames != g.drawn || frames == 0 {
		g.fbImg.WritePixels(g.scratch)
		g.drawn = frames
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
