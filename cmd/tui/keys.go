package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// keyName translates a terminal key event to the ebiten key name used in
// settings.yaml ("ArrowLeft", "KeyA", "Digit1", "Space").
// It returns "" for keys that have no binding name.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyRune:
		return runeName(ev.Rune())
	}
	return ""
}

func runeName(r rune) string {
	switch {
	case r == ' ':
		return "Space"
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return "Key" + string(unicode.ToUpper(r))
	case r >= '0' && r <= '9':
		return "Digit" + string(r)
	}
	return ""
}
