package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// HoldWindow is how long a direction counts as held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const HoldWindow = 150 * time.Millisecond

// Direction is a horizontal movement key
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Action is a non-movement command key
type Action int

const (
	ActNone Action = iota
	ActQuit
	ActPause
	ActReplay
	ActEasy
	ActMedium
	ActHard
	ActNextDifficulty
	ActNextTheme
	ActNextBasket
)

// KeyToDirection converts a key event to a movement direction
func KeyToDirection(key tcell.Key, r rune) Direction {
	switch key {
	case tcell.KeyLeft:
		return DirLeft
	case tcell.KeyRight:
		return DirRight
	case tcell.KeyRune:
		switch r {
		case 'a', 'A', 'h', 'H':
			return DirLeft
		case 'd', 'D', 'l', 'L':
			return DirRight
		}
	}
	return DirNone
}

// KeyToAction converts a key event to a command
func KeyToAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActQuit
	case tcell.KeyEnter:
		return ActReplay
	case tcell.KeyTab:
		return ActNextDifficulty
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActQuit
		case 'p', 'P', ' ':
			return ActPause
		case 'r', 'R':
			return ActReplay
		case '1':
			return ActEasy
		case '2':
			return ActMedium
		case '3':
			return ActHard
		case 't', 'T':
			return ActNextTheme
		case 'b', 'B':
			return ActNextBasket
		}
	}
	return ActNone
}

// KeyHold turns key events into held-direction flags.
type KeyHold struct {
	left  time.Time
	right time.Time
}

// Press records a key event for dir at time at. A press in one direction
// releases the other, since only one key auto-repeats at a time.
func (k *KeyHold) Press(dir Direction, at time.Time) {
	switch dir {
	case DirLeft:
		k.left = at
		k.right = time.Time{}
	case DirRight:
		k.right = at
		k.left = time.Time{}
	}
}

// Held reports which directions are held at time now.
func (k *KeyHold) Held(now time.Time) (left, right bool) {
	left = !k.left.IsZero() && now.Sub(k.left) < HoldWindow
	right = !k.right.IsZero() && now.Sub(k.right) < HoldWindow
	return left, right
}

// Release forgets all held keys.
func (k *KeyHold) Release() {
	k.left = time.Time{}
	k.right = time.Time{}
}
