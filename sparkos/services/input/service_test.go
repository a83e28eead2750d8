package input

import (
	"testing"

	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePointer struct{ ch chan hal.PointerEvent }

func (p fakePointer) Events() <-chan hal.PointerEvent { return p.ch }

type fakeInput struct{ p hal.Pointer }

func (in fakeInput) Pointer() hal.Pointer { return in.p }

type event struct {
	action proto.PointerAction
	x, y   int16
}

// collector drains its endpoint only when open is set.
type collector struct {
	ep   kernel.Capability
	open bool
	got  []event
}

func (c *collector) Step(ctx *kernel.Context) {
	if c.open {
		for {
			msg, ok := ctx.TryRecv(c.ep)
			if !ok {
				break
			}
			a, x, y, ok := proto.DecodePointerPayload(msg.Payload())
			if ok && proto.Kind(msg.Kind) == proto.MsgPointer {
				c.got = append(c.got, event{a, x, y})
			}
		}
	}
	ctx.BlockOnTick()
}

func setup(t *testing.T, buffered int) (*kernel.Kernel, chan hal.PointerEvent, *Service, *collector) {
	t.Helper()
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ch := make(chan hal.PointerEvent, buffered)
	svc := New(fakeInput{p: fakePointer{ch: ch}}, ep.Restrict(kernel.RightSend), nil)
	col := &collector{ep: ep.Restrict(kernel.RightRecv), open: true}
	_, ok := k.AddTask(svc)
	require.True(t, ok)
	k.AddTask(col)
	return k, ch, svc, col
}

func TestForwardsPressAndRelease(t *testing.T) {
	k, ch, _, col := setup(t, 4)
	ch <- hal.PointerEvent{X: 12, Y: 34, Press: true}
	ch <- hal.PointerEvent{X: 13, Y: 35, Press: false}

	k.RunUntilIdle(0)

	assert.Equal(t, []event{
		{proto.PointerDown, 12, 34},
		{proto.PointerUp, 13, 35},
	}, col.got)
}

func TestQueueFullRetriesNextTick(t *testing.T) {
	k, ch, svc, col := setup(t, 32)
	col.open = false
	for i := 0; i < 10; i++ {
		ch <- hal.PointerEvent{X: i, Press: true}
	}

	k.RunUntilIdle(0)
	require.NotNil(t, svc.pending)
	assert.Equal(t, 8, svc.pending.X)

	col.open = true
	for i := 0; i < 3; i++ {
		k.Tick()
		k.RunUntilIdle(0)
	}

	require.Len(t, col.got, 10)
	for i, ev := range col.got {
		assert.Equal(t, int16(i), ev.x)
	}
	assert.Zero(t, svc.dropped)
}

func TestClosedChannelStopsPolling(t *testing.T) {
	k, ch, svc, _ := setup(t, 1)
	close(ch)
	k.RunUntilIdle(0)
	assert.Nil(t, svc.events)
}

func TestNilInputIsIdle(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(New(nil, ep, nil))
	assert.Equal(t, 1, k.RunUntilIdle(0))
}

func TestClamp16(t *testing.T) {
	assert.Equal(t, int16(32767), clamp16(1<<20))
	assert.Equal(t, int16(-32768), clamp16(-1<<20))
	assert.Equal(t, int16(-5), clamp16(-5))
}
