package appstate

import "golang.org/x/mobile/event/key"

// KeyShortcut is one key combination.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts lists the combinations bound to an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// keymap binds shortcuts to named actions.
type keymap struct {
	actions  map[string]func()
	bindings map[KeyShortcut]string
}

func newKeymap() *keymap {
	return &keymap{actions: map[string]func(){}, bindings: map[KeyShortcut]string{}}
}

func (k *keymap) register(name string, keys KeyboardShortcuts, fn func()) {
	k.actions[name] = fn
	if keys == nil {
		return
	}
	for _, sc := range keys.KeyboardShortcuts() {
		k.bindings[sc] = name
	}
}

// trigger runs the action bound to sc. Shortcuts bound by rune match any
// key code; Escape and other non-printing keys are bound by code.
func (k *keymap) trigger(sc KeyShortcut) bool {
	name, ok := k.bindings[sc]
	if !ok && sc.Rune > 0 {
		name, ok = k.bindings[KeyShortcut{Rune: sc.Rune, Modifiers: sc.Modifiers}]
	}
	if !ok {
		return false
	}
	fn := k.actions[name]
	if fn == nil {
		return false
	}
	fn()
	return true
}
