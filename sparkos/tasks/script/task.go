// Package script replays a fixed list of button labels, one per tick.
// Headless runs use it in place of a pointer.
package script

import (
	"strings"

	"sparkcalc/internal/logger"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"

	"go.uber.org/zap"
)

type Task struct {
	out    kernel.Capability
	labels []string
	log    *zap.Logger

	next int
	done bool
}

func New(out kernel.Capability, labels []string, log *zap.Logger) *Task {
	return &Task{out: out, labels: labels, log: logger.Component(log, "script")}
}

// Parse splits a comma-separated label list, trimming blanks.
// "3, +, 4, =" yields [3 + 4 =].
func Parse(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Done reports whether every label was delivered or dropped.
func (t *Task) Done() bool { return t.done }

func (t *Task) Step(ctx *kernel.Context) {
	if t.done {
		ctx.BlockOnTick()
		return
	}
	if t.next >= len(t.labels) {
		t.done = true
		ctx.BlockOnTick()
		return
	}

	label := t.labels[t.next]
	payload := proto.PressPayload(label)
	if payload == nil {
		t.log.Warn("label skipped", zap.String(logger.FieldLabel, label))
		t.next++
		return
	}

	res := ctx.SendToCapResult(t.out, uint16(proto.MsgPress), payload, kernel.Capability{})
	switch res {
	case kernel.SendOK:
		t.log.Debug("sent", zap.String(logger.FieldLabel, label), zap.Uint64(logger.FieldTick, ctx.NowTick()))
		t.next++
	case kernel.SendErrQueueFull:
	default:
		t.log.Warn("label dropped", zap.String(logger.FieldLabel, label), zap.Stringer(logger.FieldResult, res))
		t.next++
	}
	if t.next >= len(t.labels) {
		t.done = true
	}
	ctx.BlockOnTick()
}
