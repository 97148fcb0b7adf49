package session

import "github.com/arenablitz/arcade/internal/core"

// Script is an InputSource that replays a fixed list of snapshots and
// then requests quit.
type Script struct {
	frames []core.InputSnapshot
	next   int
}

// NewScript creates a script from frames.
func NewScript(frames ...core.InputSnapshot) *Script {
	return &Script{frames: frames}
}

// Holding builds a script of n frames with the given keys held.
func Holding(n int, keys ...core.Key) *Script {
	frames := make([]core.InputSnapshot, n)
	for i := range frames {
		frames[i] = core.NewInputSnapshot()
		frames[i].Hold(keys...)
	}
	return NewScript(frames...)
}

// Poll returns the next scripted snapshot.
func (s *Script) Poll() core.InputSnapshot {
	if s.next >= len(s.frames) {
		return core.InputSnapshot{QuitRequested: true}
	}
	in := s.frames[s.next]
	s.next++
	return in
}

// Remaining returns how many scripted frames are left.
func (s *Script) Remaining() int {
	return len(s.frames) - s.next
}

// BufferSurface keeps frames in memory. Present counts frames.
type BufferSurface struct {
	screen    *core.Screen
	Presented int
}

// NewBufferSurface creates an in-memory surface of the given cell size.
func NewBufferSurface(cols, rows int) *BufferSurface {
	return &BufferSurface{screen: core.NewScreen(cols, rows)}
}

// Screen returns the frame buffer.
func (b *BufferSurface) Screen() *core.Screen {
	return b.screen
}

// Present records that a frame was shown.
func (b *BufferSurface) Present() error {
	b.Presented++
	return nil
}
