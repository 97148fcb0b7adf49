package core

import "testing"

func TestDirectionFromHeldKeys(t *testing.T) {
	tests := []struct {
		name string
		held []Key
		want Direction
	}{
		{"none", nil, Direction{}},
		{"arrow left", []Key{KeyLeft}, Direction{X: -1}},
		{"alias left", []Key{KeyA}, Direction{X: -1}},
		{"arrow and alias same side", []Key{KeyLeft, KeyA}, Direction{X: -1}},
		{"diagonal", []Key{KeyRight, KeyS}, Direction{X: 1, Y: 1}},
		{"opposites cancel", []Key{KeyLeft, KeyD}, Direction{}},
		{"up", []Key{KeyW}, Direction{Y: -1}},
		{"unbound keys ignored", []Key{KeyR, KeyEnter}, Direction{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := NewInputSnapshot()
			in.Hold(tc.held...)
			if got := in.Direction(); got != tc.want {
				t.Errorf("Direction() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestWasPressed(t *testing.T) {
	in := NewInputSnapshot()
	in.Press(KeyR)
	in.Press(KeyEscape)

	if !in.WasPressed(KeyR) || !in.WasPressed(KeyEscape) {
		t.Error("pressed keys should be reported")
	}
	if in.WasPressed(KeyQ) {
		t.Error("Q was not pressed")
	}

	var zero InputSnapshot
	if zero.IsHeld(KeyLeft) || zero.WasPressed(KeyR) {
		t.Error("zero snapshot should report nothing")
	}
}

func TestDirectionHorizontal(t *testing.T) {
	d := Direction{X: 1, Y: -1}.Horizontal()
	if d != (Direction{X: 1}) {
		t.Errorf("Horizontal() = %+v", d)
	}
	if !(Direction{}).IsZero() || d.IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
		ok   bool
	}{
		{"left", KeyLeft, true},
		{"RIGHT", KeyRight, true},
		{" w ", KeyW, true},
		{"esc", KeyEscape, true},
		{"Escape", KeyEscape, true},
		{"enter", KeyEnter, true},
		{"none", KeyNone, false},
		{"space", KeyNone, false},
	}
	for _, tc := range tests {
		got, ok := ParseKey(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseKey(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
