package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump, also starts a run from the title screen
	ActionConfirm        // Enter - start, continue, submit
	ActionRestart        // R key - restart after game over
	ActionPause          // P, Escape - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeystrokeKind classifies a text-entry keystroke.
type KeystrokeKind int

const (
	KeystrokeRune      KeystrokeKind = iota // A printable character
	KeystrokeBackspace                      // Delete the last character
	KeystrokeSubmit                         // Enter
)

// Keystroke is one raw text-entry event. Unlike actions, keystrokes keep
// their order within a frame so typed text can be replayed exactly.
type Keystroke struct {
	Kind KeystrokeKind
	Rune rune // Only set for KeystrokeRune
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Keys holds the ordered keystrokes typed this frame.
	// Only consulted while the game accepts text.
	Keys []Keystroke
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

// HasAny returns true if any of the given actions was triggered this frame.
func (f InputFrame) HasAny(actions ...Action) bool {
	for _, a := range actions {
		if f.Has(a) {
			return true
		}
	}
	return false
}

// Type appends a printable character keystroke.
func (f *InputFrame) Type(r rune) {
	f.Keys = append(f.Keys, Keystroke{Kind: KeystrokeRune, Rune: r})
}

// Backspace appends a backspace keystroke.
func (f *InputFrame) Backspace() {
	f.Keys = append(f.Keys, Keystroke{Kind: KeystrokeBackspace})
}

// Submit appends an enter keystroke.
func (f *InputFrame) Submit() {
	f.Keys = append(f.Keys, Keystroke{Kind: KeystrokeSubmit})
}

// Clear resets all actions and keystrokes for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Keys) > 0 {
		clone.Keys = append([]Keystroke(nil), f.Keys...)
	}
	return clone
}
