package core

import "strings"

// Key is a physical key the arcade understands. The platform maps its own
// key events onto these; anything unmapped is ignored.
type Key int

const (
	KeyNone   Key = iota
	KeyLeft       // Left arrow
	KeyRight      // Right arrow
	KeyUp         // Up arrow
	KeyDown       // Down arrow
	KeyA          // WASD alias for left
	KeyD          // WASD alias for right
	KeyW          // WASD alias for up
	KeyS          // WASD alias for down
	KeyR          // Restart after game over
	KeyQ          // Quit after game over
	KeyEscape     // Back to launcher
	KeyEnter      // Confirm in menus
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyR:
		return "R"
	case KeyQ:
		return "Q"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	default:
		return "None"
	}
}

// ParseKey returns the key whose name matches s, ignoring case. Unknown
// names yield KeyNone and false.
func ParseKey(s string) (Key, bool) {
	for k := KeyLeft; k <= KeyEnter; k++ {
		if strings.EqualFold(k.String(), strings.TrimSpace(s)) {
			return k, true
		}
	}
	if strings.EqualFold(strings.TrimSpace(s), "esc") {
		return KeyEscape, true
	}
	return KeyNone, false
}

// InputSnapshot is the input state for one frame. It is rebuilt every frame
// by the platform and never carried over.
type InputSnapshot struct {
	// Held reflects continuous key-down state and drives movement.
	Held map[Key]bool
	// Pressed holds edge-triggered presses in arrival order. A key that
	// stays down is reported once.
	Pressed []Key
	// QuitRequested is set when the window/terminal asked to close.
	QuitRequested bool
}

// NewInputSnapshot creates an empty snapshot.
func NewInputSnapshot() InputSnapshot {
	return InputSnapshot{Held: make(map[Key]bool)}
}

// Hold marks a key as held for this frame.
func (s *InputSnapshot) Hold(keys ...Key) {
	if s.Held == nil {
		s.Held = make(map[Key]bool)
	}
	for _, k := range keys {
		s.Held[k] = true
	}
}

// Press appends an edge-triggered key press.
func (s *InputSnapshot) Press(k Key) {
	s.Pressed = append(s.Pressed, k)
}

// IsHeld returns true if any of the given keys is held.
func (s InputSnapshot) IsHeld(keys ...Key) bool {
	for _, k := range keys {
		if s.Held[k] {
			return true
		}
	}
	return false
}

// WasPressed returns true if the key was pressed this frame.
func (s InputSnapshot) WasPressed(k Key) bool {
	for _, p := range s.Pressed {
		if p == k {
			return true
		}
	}
	return false
}

// Direction is a movement intent per axis, each component in {-1, 0, 1}.
type Direction struct {
	X, Y int
}

// Horizontal drops the vertical component.
func (d Direction) Horizontal() Direction {
	return Direction{X: d.X}
}

// IsZero reports no movement.
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Direction reads movement keys (arrows or WASD aliases). Each axis is
// independent; opposite keys cancel out.
func (s InputSnapshot) Direction() Direction {
	var d Direction
	if s.IsHeld(KeyLeft, KeyA) {
		d.X--
	}
	if s.IsHeld(KeyRight, KeyD) {
		d.X++
	}
	if s.IsHeld(KeyUp, KeyW) {
		d.Y--
	}
	if s.IsHeld(KeyDown, KeyS) {
		d.Y++
	}
	return d
}

// InputSource produces one snapshot per frame.
type InputSource interface {
	Poll() InputSnapshot
}
