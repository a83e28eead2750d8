//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostPointer struct {
	ch       chan PointerEvent
	touchIDs []ebiten.TouchID
}

// poll translates this frame's left-button and touch edges into events.
// Coordinates are already in framebuffer pixels because Layout returns the
// framebuffer size.
func (p *hostPointer) poll() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.emit(PointerEvent{X: x, Y: y, Press: true})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.emit(PointerEvent{X: x, Y: y, Press: false})
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		p.emit(PointerEvent{X: x, Y: y, Press: true})
	}
	p.touchIDs = inpututil.AppendJustReleasedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		p.emit(PointerEvent{X: x, Y: y, Press: false})
	}
}
