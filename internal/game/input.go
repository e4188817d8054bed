package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested stash action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionLoot
	ActionGrant
	ActionSort
	ActionConsume
	ActionDiscard
	ActionMark
	ActionExpand
	ActionClear
	ActionNewRun
	ActionNextHero
	ActionQuit
)

// keyToAction maps a tcell key event to a stash action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyTab:
		return ActionNextHero
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case 'a', 'A':
		return ActionLoot
	case 'g', 'G':
		return ActionGrant
	case 's', 'S':
		return ActionSort
	case 'u', 'U':
		return ActionConsume
	case 'd', 'D':
		return ActionDiscard
	case 'm', 'M':
		return ActionMark
	case 'e', 'E':
		return ActionExpand
	case 'c', 'C':
		return ActionClear
	case 'r', 'R':
		return ActionNewRun
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// cursorDelta converts a movement action to a slot offset for a grid with
// the given number of columns.
func cursorDelta(a Action, columns int) int {
	switch a {
	case ActionMoveN:
		return -columns
	case ActionMoveS:
		return columns
	case ActionMoveE:
		return 1
	case ActionMoveW:
		return -1
	}
	return 0
}
