package app

import (
	"fmt"
	"strings"

	"sparkcalc/internal/logger"
	"sparkcalc/sparkos/kernel"

	"go.uber.org/zap"
)

// installPanicHandler logs the panic with its stack, paints the screen red
// and makes the next Step fail.
func installPanicHandler(s *System) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		if s.panicked != nil {
			return
		}
		s.panicked = &info

		var stack []string
		for _, line := range strings.Split(string(info.Stack), "\n") {
			if line != "" {
				stack = append(stack, line)
			}
		}
		s.log.Error("task panic",
			zap.Uint8(logger.FieldTask, uint8(info.TaskID)),
			zap.String("panic", fmt.Sprint(info.Value)),
			zap.Strings("stack", stack),
		)

		if disp := s.h.Display(); disp != nil {
			if fb := disp.Framebuffer(); fb != nil {
				fb.ClearRGB(0x80, 0, 0)
				_ = fb.Present()
			}
		}
	})
}
