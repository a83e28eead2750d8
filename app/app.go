// Package app wires the HAL, the kernel and the calculator tasks together.
package app

import (
	"sparkcalc/hal"
	"sparkcalc/internal/errors"
	"sparkcalc/internal/logger"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/services/input"
	"sparkcalc/sparkos/tasks/calculator"
	"sparkcalc/sparkos/tasks/script"

	"go.uber.org/zap"
)

// ErrDone is returned by Step once a script has been replayed and the
// system is idle, when Config.ExitWhenDone is set.
var ErrDone = errors.New("script finished")

// ErrTaskPanic is returned by Step after a task panicked.
var ErrTaskPanic = errors.New("task panicked")

const defaultStepBudget = 256

type Config struct {
	Theme *calculator.Theme

	// Script, when non-empty, is replayed one label per tick.
	Script       []string
	ExitWhenDone bool

	// LogDisplay logs every published display update at info level.
	LogDisplay bool

	// StepBudget bounds kernel steps per host frame.
	StepBudget int

	// HoldOnPanic keeps Step returning nil after a task panic so a window
	// stays open on the panic screen; Err reports the panic.
	HoldOnPanic bool
}

type System struct {
	h   hal.HAL
	k   *kernel.Kernel
	cfg Config
	log *zap.Logger

	calc     *calculator.Task
	script   *script.Task
	observer *observer

	panicked *kernel.PanicInfo
}

// New builds the system for h. Nothing runs until Step is called.
func New(h hal.HAL, cfg Config) *System {
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = defaultStepBudget
	}
	log := h.Logger()
	if log == nil {
		log = zap.NewNop()
	}

	s := &System{
		h:   h,
		k:   kernel.New(),
		cfg: cfg,
		log: logger.Component(log, "app"),
	}
	installPanicHandler(s)

	calcEP := s.k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	obsEP := s.k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	s.calc = calculator.New(h.Display(), calcEP.Restrict(kernel.RightRecv), calculator.Options{
		Observer: obsEP.Restrict(kernel.RightSend),
		Logger:   log,
		Theme:    cfg.Theme,
	})
	s.observer = &observer{ep: obsEP.Restrict(kernel.RightRecv)}
	if cfg.LogDisplay {
		s.observer.log = logger.Component(log, "display")
	}

	s.k.AddTask(s.calc)
	s.k.AddTask(s.observer)
	s.k.AddTask(input.New(h.Input(), calcEP.Restrict(kernel.RightSend), log))
	if len(cfg.Script) > 0 {
		s.script = script.New(calcEP.Restrict(kernel.RightSend), cfg.Script, log)
		s.k.AddTask(s.script)
	}
	return s
}

// NewStep adapts New to the host runners' constructor signature.
func NewStep(cfg Config, out **System) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		s := New(h, cfg)
		if out != nil {
			*out = s
		}
		return s.Step
	}
}

// Step advances the kernel to the host tick and runs tasks until idle.
func (s *System) Step() error {
	if s.panicked != nil {
		return s.holdErr()
	}
	if t := s.h.Time(); t != nil {
		s.k.TickTo(t.Now())
	} else {
		s.k.Tick()
	}

	n := s.k.RunUntilIdle(s.cfg.StepBudget)
	if s.panicked != nil {
		return s.holdErr()
	}
	if n >= s.cfg.StepBudget {
		s.log.Debug("step budget exhausted", zap.Int("budget", s.cfg.StepBudget))
		return nil
	}
	if s.cfg.ExitWhenDone && s.script != nil && s.script.Done() {
		return ErrDone
	}
	return nil
}

// Display is the calculator's current display text, never truncated.
func (s *System) Display() string { return s.calc.State().Display }

// Published counts MsgDisplay updates seen so far.
func (s *System) Published() int { return s.observer.count }

// Err reports the task panic that stopped the system, if any.
func (s *System) Err() error {
	if s.panicked == nil {
		return nil
	}
	return errors.Wrapf(ErrTaskPanic, "task %d: %v", s.panicked.TaskID, s.panicked.Value)
}

func (s *System) holdErr() error {
	if s.cfg.HoldOnPanic {
		return nil
	}
	return s.Err()
}
