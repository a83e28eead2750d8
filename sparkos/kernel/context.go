package kernel

// Context provides task-local access to kernel operations.
//
// A Context is valid only for the duration of one Task.Step call.
type Context struct {
	k      *Kernel
	taskID TaskID

	blocked     bool
	blockOnTick bool
	blockOn     Endpoint
}

// TaskID returns the current task ID.
func (c *Context) TaskID() TaskID { return c.taskID }

// TryRecv reads one message from the capability endpoint without blocking.
func (c *Context) TryRecv(epCap Capability) (Message, bool) {
	if c.k == nil || !epCap.valid() || !epCap.canRecv() {
		return Message{}, false
	}
	return c.k.recv(epCap.ep)
}

// BlockOn parks the task until a message is sent to the capability endpoint.
// It takes effect when Step returns.
func (c *Context) BlockOn(epCap Capability) bool {
	if c.k == nil || !epCap.valid() || !epCap.canRecv() || epCap.ep >= c.k.endpointCount {
		return false
	}
	c.blocked = true
	c.blockOnTick = false
	c.blockOn = epCap.ep
	return true
}

// BlockOnTick parks the task until the next Kernel.TickTo advance.
// It takes effect when Step returns.
func (c *Context) BlockOnTick() {
	c.blocked = true
	c.blockOnTick = true
}

// Send sends a message to the capability endpoint.
func (c *Context) Send(fromCap, toCap Capability, kind uint16, payload []byte) bool {
	return c.SendCap(fromCap, toCap, kind, payload, Capability{})
}

// SendCap sends a message and transfers an optional capability.
func (c *Context) SendCap(fromCap, toCap Capability, kind uint16, payload []byte, xfer Capability) bool {
	return c.SendCapResult(fromCap, toCap, kind, payload, xfer) == SendOK
}

// SendCapResult sends a message and transfers an optional capability.
func (c *Context) SendCapResult(fromCap, toCap Capability, kind uint16, payload []byte, xfer Capability) SendResult {
	if !fromCap.valid() {
		return SendErrInvalidFromCap
	}
	if !fromCap.canSend() {
		return SendErrFromNoSendRight
	}
	if !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return c.k.send(fromCap.ep, toCap.ep, kind, payload, xfer)
}

// SendTo sends a message to the capability endpoint.
//
// The message From field is set to 0 (unknown).
func (c *Context) SendTo(toCap Capability, kind uint16, payload []byte) bool {
	return c.SendToCapResult(toCap, kind, payload, Capability{}) == SendOK
}

// SendToCapResult sends a message and transfers an optional capability.
//
// The message From field is set to 0 (unknown).
func (c *Context) SendToCapResult(toCap Capability, kind uint16, payload []byte, xfer Capability) SendResult {
	if c.k == nil {
		return SendErrNoEndpoint
	}
	if !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return c.k.send(0, toCap.ep, kind, payload, xfer)
}

// NowTick returns the last observed tick value.
func (c *Context) NowTick() uint64 {
	if c.k == nil {
		return 0
	}
	return c.k.tick
}
