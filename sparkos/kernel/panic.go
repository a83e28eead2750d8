package kernel

import "sync/atomic"

// PanicInfo contains details about a recovered task panic.
type PanicInfo struct {
	TaskID TaskID
	Value  any
	Stack  []byte
}

var panicHandler atomic.Value // func(PanicInfo)

// SetPanicHandler installs a process-wide handler for task panics.
//
// The handler runs on the kernel goroutine for every panicking task. It must not panic.
func SetPanicHandler(fn func(PanicInfo)) {
	panicHandler.Store(fn)
}

// runTask runs one Step and reports false if the task panicked.
func (k *Kernel) runTask(id TaskID, t Task, ctx *Context) (ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ok = false
		info := PanicInfo{TaskID: id, Value: r, Stack: captureStack()}
		if v := panicHandler.Load(); v != nil {
			if fn, _ := v.(func(PanicInfo)); fn != nil {
				fn(info)
			}
		}
	}()
	t.Step(ctx)
	return true
}
