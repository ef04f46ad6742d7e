package faros

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyEvent identifies a key by both its symbolic name and numeric code.
type KeyEvent struct {
	Key  ebiten.Key
	Name string // lower-case Ebitengine key name, e.g. "w", "arrowup", "space"
	Code int
}

// NewKeyEvent builds the event for an Ebitengine key.
func NewKeyEvent(k ebiten.Key) KeyEvent {
	return KeyEvent{Key: k, Name: keyName(k), Code: int(k)}
}

func keyName(k ebiten.Key) string {
	return strings.ToLower(k.String())
}

// KeySet tracks which keys are held. Every key is indexed twice, by name and
// by code, so callers can look up whichever they have.
type KeySet struct {
	names map[string]bool
	codes map[int]bool
}

// NewKeySet creates an empty KeySet.
func NewKeySet() *KeySet {
	return &KeySet{names: make(map[string]bool), codes: make(map[int]bool)}
}

// Press marks the key as held. Pressing a held key changes nothing.
func (ks *KeySet) Press(ev KeyEvent) {
	ks.names[strings.ToLower(ev.Name)] = true
	ks.codes[ev.Code] = true
}

// Release marks the key as not held. Releasing a free key changes nothing.
func (ks *KeySet) Release(ev KeyEvent) {
	delete(ks.names, strings.ToLower(ev.Name))
	delete(ks.codes, ev.Code)
}

// Pressed reports whether the key with the given name is held. Names are
// matched case-insensitively.
func (ks *KeySet) Pressed(name string) bool {
	return ks.names[strings.ToLower(name)]
}

// CodePressed reports whether the key with the given code is held.
func (ks *KeySet) CodePressed(code int) bool {
	return ks.codes[code]
}

// AnyPressed reports whether any of the named keys is held.
func (ks *KeySet) AnyPressed(names ...string) bool {
	for _, n := range names {
		if ks.Pressed(n) {
			return true
		}
	}
	return false
}

// Len returns the number of held keys.
func (ks *KeySet) Len() int {
	return len(ks.codes)
}

// Clear releases every key.
func (ks *KeySet) Clear() {
	clear(ks.names)
	clear(ks.codes)
}
