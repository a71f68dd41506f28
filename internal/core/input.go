package core

import "time"

// Action represents a semantic control action, abstracted from physical key presses.
// Typed characters are carried separately in InputFrame.Chars; actions are only
// the keys that drive the phase machine and overlays.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // Space - pause/resume play
	ActionCancel         // Esc - ask to quit, or dismiss the quit dialog
	ActionConfirm        // Enter - confirm a dialog / continue
	ActionRestart        // R - play again after a checkpoint or defeat
	ActionBack           // Q/B - leave to the outer menu from a dialog
	ActionQuit           // Ctrl+C - exit immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionCancel:
		return "Cancel"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents everything the player did during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Chars holds the raw characters typed this frame, in order.
	Chars []rune

	// Elapsed is the wall time covered by this frame.
	Elapsed time.Duration
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

// Type appends a typed character to the frame.
func (f *InputFrame) Type(r rune) {
	f.Chars = append(f.Chars, r)
}

// Seconds returns the elapsed frame time in seconds.
func (f InputFrame) Seconds() float64 {
	return f.Elapsed.Seconds()
}

// Clear resets all actions and typed characters for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Chars = f.Chars[:0]
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Chars = append([]rune(nil), f.Chars...)
	clone.Elapsed = f.Elapsed
	return clone
}
