package hal

import "go.uber.org/zap"

// HostOptions sizes the host framebuffer and supplies the logger.
type HostOptions struct {
	Width  int
	Height int
	Logger *zap.Logger
}

type hostHAL struct {
	logger *zap.Logger
	fb     *hostFramebuffer
	ptr    *hostPointer
	t      *hostTime
}

// New returns a host HAL implementation.
func New(opts HostOptions) HAL {
	return newHost(opts)
}

func newHost(opts HostOptions) *hostHAL {
	if opts.Width <= 0 {
		opts.Width = 300
	}
	if opts.Height <= 0 {
		opts.Height = 400
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &hostHAL{
		logger: log,
		fb:     newHostFramebuffer(opts.Width, opts.Height),
		ptr:    newHostPointer(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() *zap.Logger { return h.logger }
func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input        { return hostInput{ptr: h.ptr} }
func (h *hostHAL) Time() Time          { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr *hostPointer
}

func (in hostInput) Pointer() Pointer { return in.ptr }

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

// emit drops the event when the queue is full.
func (p *hostPointer) emit(ev PointerEvent) bool {
	select {
	case p.ch <- ev:
		return true
	default:
		return false
	}
}
