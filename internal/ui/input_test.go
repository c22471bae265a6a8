package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToDirection(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want Direction
	}{
		{tcell.KeyLeft, 0, DirLeft},
		{tcell.KeyRight, 0, DirRight},
		{tcell.KeyRune, 'a', DirLeft},
		{tcell.KeyRune, 'A', DirLeft},
		{tcell.KeyRune, 'h', DirLeft},
		{tcell.KeyRune, 'd', DirRight},
		{tcell.KeyRune, 'D', DirRight},
		{tcell.KeyRune, 'l', DirRight},
		{tcell.KeyUp, 0, DirNone},
		{tcell.KeyRune, 'x', DirNone},
	}

	for _, tt := range tests {
		got := KeyToDirection(tt.key, tt.rune)
		if got != tt.want {
			t.Errorf("KeyToDirection(%v, %c) = %v, want %v", tt.key, tt.rune, got, tt.want)
		}
	}
}

func TestKeyToAction(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want Action
	}{
		{tcell.KeyEscape, 0, ActQuit},
		{tcell.KeyCtrlC, 0, ActQuit},
		{tcell.KeyRune, 'q', ActQuit},
		{tcell.KeyRune, 'Q', ActQuit},
		{tcell.KeyRune, 'p', ActPause},
		{tcell.KeyRune, ' ', ActPause},
		{tcell.KeyEnter, 0, ActReplay},
		{tcell.KeyRune, 'r', ActReplay},
		{tcell.KeyRune, '1', ActEasy},
		{tcell.KeyRune, '2', ActMedium},
		{tcell.KeyRune, '3', ActHard},
		{tcell.KeyTab, 0, ActNextDifficulty},
		{tcell.KeyRune, 't', ActNextTheme},
		{tcell.KeyRune, 'b', ActNextBasket},
		{tcell.KeyRune, 'a', ActNone},
		{tcell.KeyLeft, 0, ActNone},
	}

	for _, tt := range tests {
		got := KeyToAction(tt.key, tt.rune)
		if got != tt.want {
			t.Errorf("KeyToAction(%v, %c) = %v, want %v", tt.key, tt.rune, got, tt.want)
		}
	}
}

func TestKeyHold(t *testing.T) {
	var k KeyHold
	start := time.Unix(100, 0)

	if l, r := k.Held(start); l || r {
		t.Fatal("expected nothing held initially")
	}

	k.Press(DirRight, start)
	if l, r := k.Held(start.Add(100 * time.Millisecond)); l || !r {
		t.Errorf("expected right held 100ms after press, got left=%v right=%v", l, r)
	}
	if _, r := k.Held(start.Add(HoldWindow)); r {
		t.Error("expected right released after the hold window")
	}

	// Auto-repeat keeps it held
	k.Press(DirRight, start.Add(140*time.Millisecond))
	if _, r := k.Held(start.Add(200 * time.Millisecond)); !r {
		t.Error("expected repeat to extend the hold")
	}

	// Switching direction releases the other one
	k.Press(DirLeft, start.Add(210*time.Millisecond))
	if l, r := k.Held(start.Add(220 * time.Millisecond)); !l || r {
		t.Errorf("expected only left held, got left=%v right=%v", l, r)
	}

	k.Release()
	if l, r := k.Held(start.Add(220 * time.Millisecond)); l || r {
		t.Error("expected nothing held after Release")
	}

	k.Press(DirNone, start)
	if l, r := k.Held(start); l || r {
		t.Error("DirNone should not hold anything")
	}
}
