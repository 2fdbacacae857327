// Package input keeps the per-frame key-state table read by the game systems.
package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyState is the state of one key for the current frame.
type KeyState uint8

const (
	Released KeyState = iota
	Pressed
	// JustPressed marks the first frame a key is held.
	JustPressed
)

func (s KeyState) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case JustPressed:
		return "JustPressed"
	default:
		return "Released"
	}
}

// KeySource reports the physical state of a key.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenSource reads the keyboard through ebiten.
type EbitenSource struct{}

func (EbitenSource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Keys is the key-state table, indexed by ebiten.Key.
type Keys [ebiten.KeyMax + 1]KeyState

// Down reports whether key is held this frame, including its first frame.
func (k *Keys) Down(key ebiten.Key) bool {
	if !valid(key) {
		return false
	}
	return k[key] != Released
}

// JustPressed reports whether this is the first frame key is held.
func (k *Keys) JustPressed(key ebiten.Key) bool {
	if !valid(key) {
		return false
	}
	return k[key] == JustPressed
}

// State returns the raw state of key.
func (k *Keys) State(key ebiten.Key) KeyState {
	if !valid(key) {
		return Released
	}
	return k[key]
}

// Set overrides the state of key.
func (k *Keys) Set(key ebiten.Key, state KeyState) {
	if valid(key) {
		k[key] = state
	}
}

// Sample merges the current physical key state from src into the table.
// A key going down is JustPressed for exactly one frame, then Pressed.
func (k *Keys) Sample(src KeySource) {
	for key := ebiten.Key(0); key <= ebiten.KeyMax; key++ {
		if !src.IsKeyPressed(key) {
			k[key] = Released
			continue
		}
		if k[key] == Released {
			k[key] = JustPressed
		} else {
			k[key] = Pressed
		}
	}
}

// Reset releases every key.
func (k *Keys) Reset() {
	*k = Keys{}
}

func valid(key ebiten.Key) bool {
	return key >= 0 && key <= ebiten.KeyMax
}

// ParseKey resolves an ebiten key name such as "Space" or "ArrowUp", ignoring case.
func ParseKey(name string) (ebiten.Key, error) {
	for key := ebiten.Key(0); key <= ebiten.KeyMax; key++ {
		if strings.EqualFold(key.String(), name) {
			return key, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
