package app

import (
	"sparkcalc/internal/logger"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"

	"go.uber.org/zap"
)

// observer keeps the latest MsgDisplay from the calculator task. Its text
// is capped at proto.MaxDisplayBytes; System.Display reads the task state.
type observer struct {
	ep  kernel.Capability
	log *zap.Logger // nil: updates are not logged

	text  string
	count int
}

func (o *observer) Step(ctx *kernel.Context) {
	for {
		msg, ok := ctx.TryRecv(o.ep)
		if !ok {
			break
		}
		if proto.Kind(msg.Kind) != proto.MsgDisplay {
			continue
		}
		flags, op, text, ok := proto.DecodeDisplayPayload(msg.Payload())
		if !ok {
			continue
		}
		o.text = text
		o.count++
		if o.log != nil {
			o.log.Info("display",
				zap.String(logger.FieldDisplay, text),
				zap.Stringer(logger.FieldOperator, calc.Operator(op)),
				zap.Bool(logger.FieldAwaiting, flags&proto.DisplayAwaiting != 0),
				zap.Bool("truncated", flags&proto.DisplayTruncated != 0),
			)
		}
	}
	ctx.BlockOn(o.ep)
}
