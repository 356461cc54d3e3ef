package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends map keys, mouse clicks and window events onto these.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, Up, Enter, left click - start, restart or flap
	ActionQuit            // Q, Esc, Ctrl+C, window close - end the run
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the batch of actions collected since the previous tick.
// Order is preserved: two presses in one tick from the start screen first
// start a session and then flap.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{actions: make([]Action, 0, 4)}
	for _, a := range actions {
		f.Push(a)
	}
	return f
}

// Push appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
