package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puyo/internal/core"
)

// gameKeys binds key names, as tea.KeyMsg.String reports them, to actions.
var gameKeys = map[string]core.Action{
	"ctrl+c": core.ActionQuit,
	"q":      core.ActionQuit,

	"left": core.ActionLeft, "a": core.ActionLeft, "h": core.ActionLeft,
	"right": core.ActionRight, "d": core.ActionRight, "l": core.ActionRight,
	"down": core.ActionDown, "s": core.ActionDown, "j": core.ActionDown,
	"up": core.ActionUp, "w": core.ActionUp,
	"x": core.ActionRotate, "z": core.ActionRotate, "k": core.ActionRotate,
	" ": core.ActionDrop,

	"enter": core.ActionConfirm,
	"esc":   core.ActionBack,
	"b":     core.ActionBack,
	"p":     core.ActionPause,
	"r":     core.ActionRestart,
}

// MenuAction is what a key does on a menu screen.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit,
	"q":      MenuActionQuit,
	"up":     MenuActionUp, "w": MenuActionUp, "k": MenuActionUp,
	"down": MenuActionDown, "s": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"esc": MenuActionBack, "b": MenuActionBack,
	"tab": MenuActionScoreboard,
}

// KeyMapper translates Bubble Tea key messages into actions. Bindings can
// be changed per mapper without touching the defaults.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		game: make(map[string]core.Action, len(gameKeys)),
		menu: make(map[string]MenuAction, len(menuKeys)),
	}
	for k, a := range gameKeys {
		km.game[k] = a
	}
	for k, a := range menuKeys {
		km.menu[k] = a
	}
	return km
}

// Bind makes key trigger action in game. Binding core.ActionNone unbinds it.
func (km *KeyMapper) Bind(key string, action core.Action) {
	if action == core.ActionNone {
		delete(km.game, key)
		return
	}
	km.game[key] = action
}

// MapKey returns the game action for msg, ActionNone if unbound, and
// whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToMenuAction returns the menu action for msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
