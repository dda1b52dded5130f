// Package game provides the terminal host loop around the minesweeper engine.
package game

import "github.com/gdamore/tcell/v2"

// Action is a user intent decoded from keyboard input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionReveal
	ActionFlag
	ActionRestart
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// keyAction maps a key press to an action.
func keyAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionReveal
	case tcell.KeyRune:
		switch r {
		case 'k', 'w':
			return ActionUp
		case 'j', 's':
			return ActionDown
		case 'h', 'a':
			return ActionLeft
		case 'l', 'd':
			return ActionRight
		case ' ':
			return ActionReveal
		case 'f', 'F':
			return ActionFlag
		case 'r', 'R':
			return ActionRestart
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}
