package calc

// Controller owns one State and feeds it labels. It is not safe for
// concurrent use; the calculator task drives it from a single step loop.
type Controller struct {
	state State
	err   error
}

func NewController() *Controller {
	return &Controller{state: Initial()}
}

// HandleInput applies one activation event.
func (c *Controller) HandleInput(label string) {
	c.state, c.err = Step(c.state, label)
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Display is the text to render.
func (c *Controller) Display() string { return c.state.Display }

// LastError is the cause of the most recent DisplayError, or nil.
func (c *Controller) LastError() error { return c.err }
