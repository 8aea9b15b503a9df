package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/robojobs/internal/core"
)

// mode says which input has the keyboard.
type mode int

const (
	modeTerminal mode = iota // terminal line
	modeNaming               // new job name prompt
	modeEditing              // job body editor
)

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	Run      key.Binding
	Complete key.Binding
	Halt     key.Binding
	NewJob   key.Binding
	Save     key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Complete, k.Halt, k.NewJob, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Complete, k.Halt},
		{k.NewJob, k.Save, k.Cancel},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run / next level"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Halt: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "halt"),
		),
		NewJob: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "new/open job"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "build job"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close editor"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Keys that map to no action belong to the focused text input.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action. Enter means Advance during a
// cutscene and belongs to the editor while a job body is being edited.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, m mode, cutscene bool) core.Action {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Halt):
		return core.ActionHalt
	case key.Matches(msg, k.Cancel) && m != modeTerminal:
		return core.ActionCancel
	}

	switch m {
	case modeEditing:
		if key.Matches(msg, k.Save) {
			return core.ActionSubmit
		}
		return core.ActionNone
	case modeNaming:
		if key.Matches(msg, k.Run) {
			return core.ActionSubmit
		}
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.Run) && cutscene:
		return core.ActionAdvance
	case key.Matches(msg, k.Run):
		return core.ActionSubmit
	case key.Matches(msg, k.Complete):
		return core.ActionComplete
	case key.Matches(msg, k.NewJob):
		return core.ActionNewJob
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, m mode, cutscene bool, frame *core.InputFrame) bool {
	action := km.MapKey(msg, m, cutscene)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}
