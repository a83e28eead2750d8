package kernel

const (
	maxTasks     = 32
	maxEndpoints = 32
	mailboxSlots = 8
)

type TaskID uint8

// Rights define which operations are allowed for a capability.
type Rights uint8

const (
	RightSend Rights = 1 << iota
	RightRecv
)

// Endpoint identifies an IPC destination.
type Endpoint uint8

// Capability grants access to an IPC endpoint.
//
// It is opaque by construction (no exported fields) and may be transferred via IPC.
type Capability struct {
	ep     Endpoint
	rights Rights
}

func (c Capability) valid() bool {
	return c.rights != 0
}

func (c Capability) Valid() bool { return c.valid() }

func (c Capability) canSend() bool { return c.rights&RightSend != 0 }
func (c Capability) canRecv() bool { return c.rights&RightRecv != 0 }

// Restrict returns a capability with a reduced set of rights.
func (c Capability) Restrict(rights Rights) Capability {
	if !c.valid() {
		return Capability{}
	}
	r := c.rights & rights
	if r == 0 {
		return Capability{}
	}
	return Capability{ep: c.ep, rights: r}
}

// Message is a fixed-size IPC envelope.
type Message struct {
	From Endpoint
	To   Endpoint
	Kind uint16
	Len  uint16
	Data [MaxMessageBytes]byte
	Cap  Capability
}

// Payload returns the used part of Data.
func (m *Message) Payload() []byte {
	n := int(m.Len)
	if n > MaxMessageBytes {
		n = MaxMessageBytes
	}
	return m.Data[:n]
}

// MaxMessageBytes is the maximum payload size for IPC messages.
const MaxMessageBytes = 128

// SendResult describes the outcome of a send attempt.
type SendResult uint8

const (
	SendOK SendResult = iota
	SendErrInvalidFromCap
	SendErrInvalidToCap
	SendErrFromNoSendRight
	SendErrToNoSendRight
	SendErrNoEndpoint
	SendErrPayloadTooLarge
	SendErrQueueFull
)

func (r SendResult) String() string {
	switch r {
	case SendOK:
		return "ok"
	case SendErrInvalidFromCap:
		return "invalid from capability"
	case SendErrInvalidToCap:
		return "invalid to capability"
	case SendErrFromNoSendRight:
		return "from capability has no send right"
	case SendErrToNoSendRight:
		return "to capability has no send right"
	case SendErrNoEndpoint:
		return "no such endpoint"
	case SendErrPayloadTooLarge:
		return "payload too large"
	case SendErrQueueFull:
		return "queue full"
	default:
		return "unknown"
	}
}

// Task is a cooperative unit of execution.
//
// Step must return promptly. A task that has nothing to do calls
// Context.BlockOn or Context.BlockOnTick before returning.
type Task interface {
	Step(*Context)
}

type endpointState struct {
	q        mailbox
	waitMask uint32
}

type taskState struct {
	task     Task
	runnable bool
	dead     bool
	waiting  Endpoint
}

// Kernel is a minimal cooperative scheduler plus IPC router.
//
// All methods must be called from one goroutine.
type Kernel struct {
	endpoints     [maxEndpoints]endpointState
	endpointCount Endpoint

	tasks     [maxTasks]taskState
	taskCount TaskID

	rr TaskID

	tick         uint64
	tickWaitMask uint32
}

// New creates a kernel instance.
func New() *Kernel {
	return &Kernel{}
}

// NewEndpoint allocates a new endpoint and returns a capability for it.
func (k *Kernel) NewEndpoint(rights Rights) Capability {
	if k.endpointCount >= maxEndpoints {
		return Capability{}
	}
	ep := k.endpointCount
	k.endpointCount++
	return Capability{ep: ep, rights: rights}
}

// AddTask registers a task and returns its ID.
func (k *Kernel) AddTask(t Task) (TaskID, bool) {
	if k.taskCount >= maxTasks || t == nil {
		return 0, false
	}
	id := k.taskCount
	k.taskCount++
	k.tasks[id] = taskState{task: t, runnable: true}
	return id, true
}

// Step runs at most one runnable task step and reports whether it ran one.
func (k *Kernel) Step() bool {
	if k.taskCount == 0 {
		return false
	}

	for i := TaskID(0); i < k.taskCount; i++ {
		id := (k.rr + i) % k.taskCount
		st := &k.tasks[id]
		if st.task == nil || !st.runnable || st.dead {
			continue
		}

		k.rr = (id + 1) % k.taskCount
		ctx := &Context{k: k, taskID: id}
		if !k.runTask(id, st.task, ctx) {
			st.dead = true
			st.runnable = false
			return true
		}

		if ctx.blocked {
			st.runnable = false
			if ctx.blockOnTick {
				k.tickWaitMask |= 1 << id
			} else {
				st.waiting = ctx.blockOn
				if st.waiting < k.endpointCount {
					k.endpoints[st.waiting].waitMask |= 1 << id
					if k.endpoints[st.waiting].q.len() > 0 {
						k.wake(st.waiting)
					}
				}
			}
		}
		return true
	}
	return false
}

// RunUntilIdle calls Step until no task is runnable or budget steps ran.
// It returns the number of steps taken. budget <= 0 means unbounded.
func (k *Kernel) RunUntilIdle(budget int) int {
	n := 0
	for budget <= 0 || n < budget {
		if !k.Step() {
			break
		}
		n++
	}
	return n
}

// Tick advances the tick counter by one and wakes tick waiters.
func (k *Kernel) Tick() {
	k.TickTo(k.tick + 1)
}

// TickTo advances the tick counter to seq (never backwards) and wakes
// tasks blocked via Context.BlockOnTick.
func (k *Kernel) TickTo(seq uint64) {
	if seq <= k.tick {
		return
	}
	k.tick = seq

	wait := k.tickWaitMask
	if wait == 0 {
		return
	}

	for tid := TaskID(0); tid < k.taskCount; tid++ {
		if wait&(1<<tid) == 0 {
			continue
		}
		if !k.tasks[tid].dead {
			k.tasks[tid].runnable = true
		}
	}
	k.tickWaitMask = 0
}

// NowTick returns the last tick passed to TickTo.
func (k *Kernel) NowTick() uint64 { return k.tick }

// Alive reports whether the task has not panicked.
func (k *Kernel) Alive(id TaskID) bool {
	return id < k.taskCount && !k.tasks[id].dead
}

func (k *Kernel) send(from Endpoint, to Endpoint, kind uint16, payload []byte, xfer Capability) SendResult {
	if to >= k.endpointCount {
		return SendErrNoEndpoint
	}
	if len(payload) > MaxMessageBytes {
		return SendErrPayloadTooLarge
	}

	var msg Message
	msg.From = from
	msg.To = to
	msg.Kind = kind
	msg.Len = uint16(len(payload))
	copy(msg.Data[:], payload)
	msg.Cap = xfer

	ep := &k.endpoints[to]
	if !ep.q.push(msg) {
		return SendErrQueueFull
	}
	k.wake(to)
	return SendOK
}

func (k *Kernel) wake(to Endpoint) {
	ep := &k.endpoints[to]
	wait := ep.waitMask
	if wait == 0 {
		return
	}

	for tid := TaskID(0); tid < k.taskCount; tid++ {
		if wait&(1<<tid) == 0 {
			continue
		}
		if !k.tasks[tid].dead {
			k.tasks[tid].runnable = true
		}
		ep.waitMask &^= 1 << tid
	}
}

func (k *Kernel) recv(to Endpoint) (Message, bool) {
	if to >= k.endpointCount {
		return Message{}, false
	}
	return k.endpoints[to].q.pop()
}
