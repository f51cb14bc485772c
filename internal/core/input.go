package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move ship left
	ActionRight          // D, Right arrow - move ship right
	ActionFire           // Space - fire a bolt
	ActionStart          // Enter - start a game, continue after a lost life
	ActionRestart        // R key - new game after the session completes
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is the capability the simulation consumes to read the keyboard.
// Held is level-triggered; Pressed is true only on the frame a key goes down.
type Input interface {
	IsHeld(a Action) bool
	IsPressed(a Action) bool
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Held contains actions whose keys are down this frame.
	Held map[Action]bool
	// Pressed contains actions whose keys went down this frame.
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Set marks an action as both held and newly pressed for this frame.
// Tests and one-shot hosts use it for single-frame taps.
func (f *InputFrame) Set(a Action) {
	f.Hold(a)
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks an action as held without an edge.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld implements Input.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// IsPressed implements Input.
func (f InputFrame) IsPressed(a Action) bool {
	return f.Pressed[a]
}

// InputTracker derives key edges from consecutive level snapshots.
// Hosts that can only observe which keys are down feed it one held set per
// frame; an action is Pressed when it is held now and was not held on the
// previous frame.
type InputTracker struct {
	prev map[Action]bool
}

// NewInputTracker creates a tracker with no keys down.
func NewInputTracker() *InputTracker {
	return &InputTracker{prev: make(map[Action]bool)}
}

// Next builds the frame for the given held actions and remembers them.
func (t *InputTracker) Next(held ...Action) InputFrame {
	frame := NewInputFrame()
	for _, a := range held {
		if a == ActionNone {
			continue
		}
		frame.Held[a] = true
		if !t.prev[a] {
			frame.Pressed[a] = true
		}
	}
	clear(t.prev)
	for a := range frame.Held {
		t.prev[a] = true
	}
	return frame
}

// Reset forgets the previous frame, so the next held key counts as an edge.
func (t *InputTracker) Reset() {
	clear(t.prev)
}
