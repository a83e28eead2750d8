package hal

import "time"

// hostTime converts wall-clock time between host steps into 1ms ticks.
type hostTime struct {
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{}
}

func (t *hostTime) Now() uint64 { return t.seq }

func (t *hostTime) step() {
	t.advance(time.Now())
}

// advance always moves at least one tick on the first call so a fresh
// system gets a chance to run.
func (t *hostTime) advance(now time.Time) {
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.seq++
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	const tickDur = time.Millisecond
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % tickDur
	t.seq += ticks
}
