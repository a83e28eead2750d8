package calculator

import (
	"testing"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newMemFB(w, h int) *memFB {
	return &memFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFB) Width() int              { return f.w }
func (f *memFB) Height() int             { return f.h }
func (f *memFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFB) StrideBytes() int        { return f.w * 2 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) ClearRGB(r, g, b uint8)  {}
func (f *memFB) Present() error {
	f.presents++
	return nil
}

func (f *memFB) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

type memDisplay struct{ fb hal.Framebuffer }

func (d memDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type outMsg struct {
	kind    proto.Kind
	payload []byte
}

// feeder sends its queue, then waits for more.
type feeder struct {
	to    kernel.Capability
	queue []outMsg
}

func (f *feeder) Step(ctx *kernel.Context) {
	for len(f.queue) > 0 {
		m := f.queue[0]
		if ctx.SendToCapResult(f.to, uint16(m.kind), m.payload, kernel.Capability{}) != kernel.SendOK {
			break
		}
		f.queue = f.queue[1:]
	}
	ctx.BlockOnTick()
}

// sink records MsgDisplay texts.
type sink struct {
	ep    kernel.Capability
	texts []string
	flags []proto.DisplayFlags
}

func (s *sink) Step(ctx *kernel.Context) {
	for {
		msg, ok := ctx.TryRecv(s.ep)
		if !ok {
			break
		}
		flags, _, text, ok := proto.DecodeDisplayPayload(msg.Payload())
		if ok {
			s.texts = append(s.texts, text)
			s.flags = append(s.flags, flags)
		}
	}
	ctx.BlockOn(s.ep)
}

type rig struct {
	k    *kernel.Kernel
	fb   *memFB
	task *Task
	feed *feeder
	out  *sink
}

func newRig(t *testing.T) *rig {
	t.Helper()
	k := kernel.New()
	in := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	obs := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	require.True(t, in.Valid())
	require.True(t, obs.Valid())

	fb := newMemFB(300, 400)
	r := &rig{
		k:    k,
		fb:   fb,
		task: New(memDisplay{fb: fb}, in.Restrict(kernel.RightRecv), Options{Observer: obs.Restrict(kernel.RightSend)}),
		feed: &feeder{to: in.Restrict(kernel.RightSend)},
		out:  &sink{ep: obs.Restrict(kernel.RightRecv)},
	}
	k.AddTask(r.task)
	k.AddTask(r.feed)
	k.AddTask(r.out)
	k.RunUntilIdle(0)
	return r
}

func (r *rig) send(msgs ...outMsg) {
	r.feed.queue = append(r.feed.queue, msgs...)
	r.k.Tick()
	r.k.RunUntilIdle(0)
}

func press(labels ...string) []outMsg {
	out := make([]outMsg, 0, len(labels))
	for _, l := range labels {
		out = append(out, outMsg{kind: proto.MsgPress, payload: proto.PressPayload(l)})
	}
	return out
}

func (r *rig) click(label string) []outMsg {
	for _, b := range r.task.layout.Buttons {
		if b.Label == label {
			x, y := center(b.Rect)
			return []outMsg{
				{kind: proto.MsgPointer, payload: proto.PointerPayload(proto.PointerDown, int16(x), int16(y))},
				{kind: proto.MsgPointer, payload: proto.PointerPayload(proto.PointerUp, int16(x), int16(y))},
			}
		}
	}
	return nil
}

func TestStartPublishesInitialDisplayAndRenders(t *testing.T) {
	r := newRig(t)
	require.Equal(t, []string{""}, r.out.texts)
	assert.Equal(t, proto.DisplayAwaiting, r.out.flags[0])
	assert.Equal(t, 1, r.fb.presents)

	bg := DefaultTheme().Background
	assert.Equal(t, hal.RGB565(bg.R, bg.G, bg.B), r.fb.pixel(0, 0))
	dbg := DefaultTheme().DisplayBG
	assert.Equal(t, hal.RGB565(dbg.R, dbg.G, dbg.B), r.fb.pixel(12, 12))
}

func TestPressMessagesDriveController(t *testing.T) {
	r := newRig(t)
	r.send(press("3", "+", "4", "=")...)

	assert.Equal(t, "7", r.task.State().Display)
	assert.Equal(t, []string{"", "3", "3", "4", "7"}, r.out.texts)
}

func TestClickActivatesOnRelease(t *testing.T) {
	r := newRig(t)

	var msgs []outMsg
	for _, l := range []string{"9", calc.LabelSquare} {
		msgs = append(msgs, r.click(l)...)
	}
	r.send(msgs...)

	assert.Equal(t, "81", r.task.State().Display)
	assert.Equal(t, -1, r.task.armed)
}

func TestReleaseElsewhereCancels(t *testing.T) {
	r := newRig(t)
	seven := r.task.layout.Buttons[0].Rect
	eight := r.task.layout.Buttons[1].Rect
	x7, y7 := center(seven)
	x8, y8 := center(eight)

	r.send(outMsg{kind: proto.MsgPointer, payload: proto.PointerPayload(proto.PointerDown, int16(x7), int16(y7))})
	assert.Equal(t, 0, r.task.armed)
	armed := DefaultTheme().ButtonArmed
	assert.Equal(t, hal.RGB565(armed.R, armed.G, armed.B), r.fb.pixel(seven.Min.X+1, seven.Min.Y+1))

	r.send(outMsg{kind: proto.MsgPointer, payload: proto.PointerPayload(proto.PointerUp, int16(x8), int16(y8))})
	assert.Equal(t, "", r.task.State().Display)
	assert.Equal(t, -1, r.task.armed)
	bg := DefaultTheme().ButtonBG
	assert.Equal(t, hal.RGB565(bg.R, bg.G, bg.B), r.fb.pixel(seven.Min.X+1, seven.Min.Y+1))
}

func TestDisplayTextIsDrawn(t *testing.T) {
	r := newRig(t)
	fg := DefaultTheme().DisplayFG
	want := hal.RGB565(fg.R, fg.G, fg.B)

	count := func() int {
		n := 0
		d := r.task.layout.Display
		for y := d.Min.Y; y < d.Max.Y; y++ {
			for x := d.Min.X; x < d.Max.X; x++ {
				if r.fb.pixel(x, y) == want {
					n++
				}
			}
		}
		return n
	}
	require.Zero(t, count())

	r.send(press("8")...)
	assert.Positive(t, count())
}

func TestErrorFlagsPublished(t *testing.T) {
	r := newRig(t)
	r.send(press("5", "/", "0", "=")...)

	last := len(r.out.texts) - 1
	assert.Equal(t, calc.DisplayError, r.out.texts[last])
	assert.Equal(t, proto.DisplayFailed|proto.DisplayAwaiting, r.out.flags[last])
}

func TestUnknownAndMalformedMessagesIgnored(t *testing.T) {
	r := newRig(t)
	r.send(
		outMsg{kind: proto.MsgPress, payload: proto.PressPayload("sqrt")},
		outMsg{kind: proto.MsgPointer, payload: []byte{1, 2}},
		outMsg{kind: proto.MsgDisplay, payload: []byte{0, 0}},
	)
	assert.Equal(t, calc.Initial(), r.task.State())
	assert.Equal(t, []string{""}, r.out.texts)
}

func TestTooSmallFramebufferStillComputes(t *testing.T) {
	k := kernel.New()
	in := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	task := New(memDisplay{fb: newMemFB(20, 20)}, in.Restrict(kernel.RightRecv), Options{})
	feed := &feeder{to: in.Restrict(kernel.RightSend), queue: press("2", calc.LabelSquare)}
	k.AddTask(task)
	k.AddTask(feed)
	k.RunUntilIdle(0)

	assert.Equal(t, "4", task.State().Display)
}
