package core

// Action represents a semantic player action, abstracted from the raw pointer.
// The input mapper derives actions from touch zones; the world consumes them.
type Action uint8

const (
	ActionNone      Action = iota
	ActionMoveLeft         // bottom-left zone - walk left and scroll
	ActionMoveRight        // bottom-right zone - walk right and scroll
	ActionJump             // top outer zones - spend a jump charge
	ActionFire             // top inner zones - launch a projectile (edge-triggered)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// InputFrame represents the action flags held during one simulation tick.
// Flags are stored as a bitset so frames are cheap to copy between goroutines.
type InputFrame struct {
	bits uint8
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.bits |= 1 << a
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionNone {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Actions returns the active actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionMoveLeft; a <= ActionFire; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
