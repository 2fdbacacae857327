package input

import "github.com/hajimehoshi/ebiten/v2"

// Script is a KeySource replaying a fixed set of held keys per frame,
// used by the headless runner and tests.
type Script struct {
	frames [][]ebiten.Key
	frame  int
}

// NewScript builds a script where frames[i] lists the keys held on frame i.
// After the last frame no key is held.
func NewScript(frames ...[]ebiten.Key) *Script {
	return &Script{frames: frames}
}

// Hold returns a script holding keys for n frames. n below zero holds nothing.
func Hold(n int, keys ...ebiten.Key) *Script {
	n = max(n, 0)
	frames := make([][]ebiten.Key, n)
	for i := range frames {
		frames[i] = keys
	}
	return NewScript(frames...)
}

func (s *Script) IsKeyPressed(key ebiten.Key) bool {
	if s.frame >= len(s.frames) {
		return false
	}
	for _, held := range s.frames[s.frame] {
		if held == key {
			return true
		}
	}
	return false
}

// Next advances to the following frame.
func (s *Script) Next() {
	s.frame++
}

// Done reports whether every scripted frame has been consumed.
func (s *Script) Done() bool {
	return s.frame >= len(s.frames)
}
