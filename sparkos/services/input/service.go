// Package input forwards host pointer events into the kernel.
package input

import (
	"sparkcalc/hal"
	"sparkcalc/internal/logger"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"

	"go.uber.org/zap"
)

type Service struct {
	in  hal.Input
	out kernel.Capability
	log *zap.Logger

	events  <-chan hal.PointerEvent
	pending *hal.PointerEvent
	dropped uint64
}

// New returns a service that sends MsgPointer to out once per tick.
func New(in hal.Input, out kernel.Capability, log *zap.Logger) *Service {
	return &Service{in: in, out: out, log: logger.Component(log, "input")}
}

func (s *Service) Step(ctx *kernel.Context) {
	if s.events == nil && s.in != nil {
		if p := s.in.Pointer(); p != nil {
			s.events = p.Events()
		}
		s.in = nil
	}
	if s.events == nil {
		ctx.BlockOnTick()
		return
	}

	for {
		ev, ok := s.next()
		if !ok {
			break
		}
		if !s.forward(ctx, ev) {
			break
		}
	}
	ctx.BlockOnTick()
}

func (s *Service) next() (hal.PointerEvent, bool) {
	if s.pending != nil {
		ev := *s.pending
		s.pending = nil
		return ev, true
	}
	select {
	case ev, ok := <-s.events:
		if !ok {
			s.events = nil
			return hal.PointerEvent{}, false
		}
		return ev, true
	default:
		return hal.PointerEvent{}, false
	}
}

// forward reports false when the receiver is full; the event is retried
// next tick.
func (s *Service) forward(ctx *kernel.Context, ev hal.PointerEvent) bool {
	action := proto.PointerUp
	if ev.Press {
		action = proto.PointerDown
	}
	res := ctx.SendToCapResult(s.out, uint16(proto.MsgPointer), proto.PointerPayload(action, clamp16(ev.X), clamp16(ev.Y)), kernel.Capability{})
	switch res {
	case kernel.SendOK:
		return true
	case kernel.SendErrQueueFull:
		s.pending = &ev
		return false
	default:
		s.dropped++
		s.log.Warn("pointer event dropped",
			zap.Stringer(logger.FieldResult, res),
			zap.Int(logger.FieldX, ev.X),
			zap.Int(logger.FieldY, ev.Y),
		)
		return true
	}
}

func clamp16(v int) int16 {
	if v < -1<<15 {
		return -1 << 15
	}
	if v > 1<<15-1 {
		return 1<<15 - 1
	}
	return int16(v)
}
