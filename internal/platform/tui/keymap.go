package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// GameKeys binds keys to in-game actions.
type GameKeys struct {
	Tap   key.Binding
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pause key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// MenuKeys binds keys to game picker actions. It satisfies help.KeyMap.
type MenuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings shown in the menu footer.
func (k MenuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns all menu bindings.
func (k MenuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Scores, k.Back, k.Quit}}
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	Game GameKeys
	Menu MenuKeys
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Game: GameKeys{
			Tap:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "tap")),
			Up:    key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
			Down:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
			Left:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
			Right: key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
			Pause: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
			Back:  key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc/b", "back")),
			Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		Menu: MenuKeys{
			Up:     key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/k", "up")),
			Down:   key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/j", "down")),
			Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
			Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
			Back:   key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "back")),
			Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.Game
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Tap):
		return core.ActionTap, false
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the key's action to frame. Several keys may land in
// one frame between ticks. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
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

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	k := km.Menu
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	case key.Matches(msg, k.Scores):
		return MenuActionScoreboard
	}
	return MenuActionNone
}
