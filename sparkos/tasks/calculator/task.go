// Package calculator is the calculator face: it owns the display state
// controller, hit-tests pointer events against the button grid, and
// redraws the framebuffer after every change.
package calculator

import (
	"sparkcalc/hal"
	"sparkcalc/internal/logger"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"

	"go.uber.org/zap"
)

type Task struct {
	disp     hal.Display
	ep       kernel.Capability
	observer kernel.Capability
	log      *zap.Logger
	theme    Theme

	fb     hal.Framebuffer
	layout Layout
	ctrl   *calc.Controller

	started bool
	armed   int
	dirty   bool
}

// Options configures a Task. Observer, when valid, receives a MsgDisplay
// after every state change.
type Options struct {
	Observer kernel.Capability
	Logger   *zap.Logger
	Theme    *Theme
}

// New returns a task that receives MsgPointer and MsgPress on ep.
func New(disp hal.Display, ep kernel.Capability, opts Options) *Task {
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	return &Task{
		disp:     disp,
		ep:       ep,
		observer: opts.Observer,
		log:      logger.Component(opts.Logger, "calculator"),
		theme:    theme,
		ctrl:     calc.NewController(),
		armed:    -1,
	}
}

// State returns the controller state.
func (t *Task) State() calc.State { return t.ctrl.State() }

func (t *Task) Step(ctx *kernel.Context) {
	if !t.started {
		t.start(ctx)
	}

	for {
		msg, ok := ctx.TryRecv(t.ep)
		if !ok {
			break
		}
		t.handle(ctx, &msg)
	}

	if t.dirty {
		t.render()
	}
	ctx.BlockOn(t.ep)
}

func (t *Task) start(ctx *kernel.Context) {
	t.started = true
	if t.disp != nil {
		t.fb = t.disp.Framebuffer()
	}
	if t.fb != nil {
		l, ok := NewLayout(t.fb.Width(), t.fb.Height())
		if ok {
			t.layout = l
		} else {
			t.log.Warn("framebuffer too small for the button grid",
				zap.Int("width", t.fb.Width()),
				zap.Int("height", t.fb.Height()),
			)
			t.fb = nil
		}
	}
	t.dirty = true
	t.publish(ctx)
}

func (t *Task) handle(ctx *kernel.Context, msg *kernel.Message) {
	switch proto.Kind(msg.Kind) {
	case proto.MsgPointer:
		action, x, y, ok := proto.DecodePointerPayload(msg.Payload())
		if !ok {
			t.log.Debug("bad pointer payload", zap.Uint16("len", msg.Len))
			return
		}
		if label, ok := t.pointer(action, int(x), int(y)); ok {
			t.press(ctx, label)
		}

	case proto.MsgPress:
		label, ok := proto.DecodePressPayload(msg.Payload())
		if !ok {
			t.log.Debug("bad press payload", zap.Uint16("len", msg.Len))
			return
		}
		t.press(ctx, label)

	default:
		t.log.Debug("ignored message", zap.Stringer(logger.FieldKind, proto.Kind(msg.Kind)))
	}
}

// pointer applies push-button semantics: a press arms the button under the
// pointer, and releasing over the same button activates it.
func (t *Task) pointer(action proto.PointerAction, x, y int) (string, bool) {
	if t.fb == nil {
		return "", false
	}
	idx, hit := t.layout.HitTest(x, y)
	switch action {
	case proto.PointerDown:
		if !hit {
			idx = -1
		}
		if idx != t.armed {
			t.armed = idx
			t.dirty = true
		}
		return "", false

	case proto.PointerUp:
		armed := t.armed
		if armed >= 0 {
			t.armed = -1
			t.dirty = true
		}
		if hit && idx == armed {
			return t.layout.Buttons[idx].Label, true
		}
	}
	return "", false
}

func (t *Task) press(ctx *kernel.Context, label string) {
	if calc.Classify(label) == calc.KeyUnknown {
		t.log.Debug("unknown label", zap.String(logger.FieldLabel, label))
		return
	}

	before := t.ctrl.State()
	t.ctrl.HandleInput(label)
	after := t.ctrl.State()

	t.log.Debug("press",
		zap.String(logger.FieldLabel, label),
		zap.String(logger.FieldDisplay, after.Display),
		zap.Stringer(logger.FieldOperator, after.Op),
		zap.Float64(logger.FieldOperand, after.First),
		zap.Bool(logger.FieldAwaiting, after.Awaiting),
	)
	if err := t.ctrl.LastError(); err != nil {
		t.log.Info("display error", zap.String(logger.FieldLabel, label), zap.Error(err))
	}

	if after != before {
		t.dirty = true
		t.publish(ctx)
	}
}

func (t *Task) publish(ctx *kernel.Context) {
	if !t.observer.Valid() {
		return
	}
	s := t.ctrl.State()
	var flags proto.DisplayFlags
	if s.Failed() {
		flags |= proto.DisplayFailed
	}
	if s.Awaiting {
		flags |= proto.DisplayAwaiting
	}
	res := ctx.SendToCapResult(t.observer, uint16(proto.MsgDisplay), proto.DisplayPayload(flags, byte(s.Op), s.Display), kernel.Capability{})
	if res != kernel.SendOK {
		t.log.Warn("display update dropped", zap.Stringer(logger.FieldResult, res))
	}
}
