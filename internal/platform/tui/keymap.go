package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skytype/internal/core"
)

// GameKeyMap holds the control bindings shown in the help footer.
// Typed characters are not bindings; they go straight to the frame.
type GameKeyMap struct {
	Pause      key.Binding
	Cancel     key.Binding
	Confirm    key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Back: key.NewBinding(
			key.WithKeys("q", "b"),
			key.WithHelp("q/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Cancel, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Cancel, k.Confirm},
		{k.Restart, k.Back, k.Quit, k.Screenshot},
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
// The mapping depends on the game phase: while playing every printable
// character except space is a typed letter, so letter keys only act as
// commands on the end-of-session screens.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message for the given phase.
// It returns the action (may be ActionNone) and the typed rune (0 if none).
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase string) (core.Action, rune) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, 0
	case key.Matches(msg, km.keys.Cancel):
		return core.ActionCancel, 0
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm, 0
	}

	if phase == "playing" {
		if r, ok := typedRune(msg); ok {
			return core.ActionNone, r
		}
		return core.ActionNone, 0
	}

	if phase == "checkpoint" || phase == "failed" {
		switch {
		case key.Matches(msg, km.keys.Restart):
			return core.ActionRestart, 0
		case key.Matches(msg, km.keys.Back):
			return core.ActionBack, 0
		}
	}

	return core.ActionNone, 0
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, phase string, frame *core.InputFrame) bool {
	action, r := km.MapKey(msg, phase)
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	if r != 0 {
		frame.Type(r)
	}
	return false
}

// typedRune extracts a single printable character from a key message.
func typedRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return 0, false
	}
	return r, true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionNew
	MenuActionDelete
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "n":
		return MenuActionNew
	case "x", "delete":
		return MenuActionDelete
	}

	return MenuActionNone
}
