package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToIntent(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Intent
	}{
		{"left arrow", tcell.KeyLeft, 0, IntentLeft},
		{"right arrow", tcell.KeyRight, 0, IntentRight},
		{"up arrow", tcell.KeyUp, 0, IntentJump},
		{"a key", tcell.KeyRune, 'a', IntentLeft},
		{"D key", tcell.KeyRune, 'D', IntentRight},
		{"w key", tcell.KeyRune, 'w', IntentJump},
		{"space", tcell.KeyRune, ' ', IntentJump},
		{"unrelated rune", tcell.KeyRune, 'x', IntentNone},
		{"down arrow", tcell.KeyDown, 0, IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeyToIntent(tt.key, tt.r)
			if got != tt.want {
				t.Errorf("expected intent %d, got %d", tt.want, got)
			}
		})
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should quit")
	}
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("q should quit")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("Q should quit")
	}
	if IsQuitKey(tcell.KeyRune, 'w') {
		t.Error("w should not quit")
	}
	if IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape navigates back, it should not quit")
	}
}

func TestIsBackKey(t *testing.T) {
	if !IsBackKey(tcell.KeyEscape) {
		t.Error("Escape should navigate back")
	}
	if IsBackKey(tcell.KeyEnter) {
		t.Error("Enter should not navigate back")
	}
}

func TestIsResetKey(t *testing.T) {
	if !IsResetKey(tcell.KeyRune, 'r') {
		t.Error("r should reset")
	}
	if !IsResetKey(tcell.KeyRune, 'R') {
		t.Error("R should reset")
	}
	if IsResetKey(tcell.KeyRune, 'x') {
		t.Error("x should not reset")
	}
}
