package input

import (
	"github.com/zyedidia/generic/mapset"
)

// KeyTable tracks, per key code, whether it is held and whether it changed
// state during the current frame.
type KeyTable struct {
	held         mapset.Set[string]
	transitioned mapset.Set[string]
}

// NewKeyTable creates a table with every key released
func NewKeyTable() *KeyTable {
	return &KeyTable{
		held:         mapset.New[string](),
		transitioned: mapset.New[string](),
	}
}

// Apply records a key transition
func (k *KeyTable) Apply(code string, tr Transition) {
	if tr == KeyDown {
		k.held.Put(code)
	} else {
		k.held.Remove(code)
	}
	k.transitioned.Put(code)
}

// Held reports whether the key is currently down
func (k *KeyTable) Held(code string) bool {
	return k.held.Has(code)
}

// Transitioned reports whether the key changed state this frame
func (k *KeyTable) Transitioned(code string) bool {
	return k.transitioned.Has(code)
}

// JustPressed reports whether the key went down this frame and is still held
func (k *KeyTable) JustPressed(code string) bool {
	return k.Held(code) && k.Transitioned(code)
}

// EndFrame clears every transition bit
func (k *KeyTable) EndFrame() {
	k.transitioned.Clear()
}
