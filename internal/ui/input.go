package ui

import "github.com/gdamore/tcell/v2"

// Intent is a movement intent decoded from a key event.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentJump
)

// KeyToIntent converts a key event to a movement intent.
func KeyToIntent(key tcell.Key, r rune) Intent {
	switch key {
	case tcell.KeyLeft:
		return IntentLeft
	case tcell.KeyRight:
		return IntentRight
	case tcell.KeyUp:
		return IntentJump
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return IntentLeft
		case 'd', 'D':
			return IntentRight
		case 'w', 'W', ' ':
			return IntentJump
		}
	}
	return IntentNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsBackKey returns true if the key should return to the previous screen
func IsBackKey(key tcell.Key) bool {
	return key == tcell.KeyEscape
}

// IsStartKey returns true if the key should start/confirm
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}

// IsResetKey returns true if the key should reset the current level
func IsResetKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'r' || r == 'R')
}
