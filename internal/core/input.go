package core

// Action represents a semantic game action, abstracted from physical input.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A - nudge the paddle left
	ActionRight         // Right arrow, D - nudge the paddle right
	ActionLaunch        // Space, click - release the ball from the paddle
	ActionQuit          // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input gathered between two simulation ticks.
// A drag sets an absolute paddle target; the latest drag wins.
type InputFrame struct {
	Actions map[Action]bool

	paddleX   float64
	paddleSet bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// DragTo records an absolute paddle target in playfield coordinates.
func (f *InputFrame) DragTo(x float64) {
	f.paddleX = x
	f.paddleSet = true
}

// Drag returns the paddle target recorded this frame, if any.
func (f InputFrame) Drag() (float64, bool) {
	return f.paddleX, f.paddleSet
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.paddleX = 0
	f.paddleSet = false
}
