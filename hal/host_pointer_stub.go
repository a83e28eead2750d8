//go:build !cgo

package hal

type hostPointer struct {
	ch chan PointerEvent
}

func (p *hostPointer) poll() {
	// No pointer support without the window backend.
}
