package ui

import "github.com/gdamore/tcell/v2"

// Command is an application-level action triggered by a key chord.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandNextNote
	CommandPreviousNote
	CommandSwitchToList
	CommandSwitchToEditor
	CommandSwitchToPreview
	CommandNewNote
	CommandSaveNote
	CommandDeleteNote
	CommandRenameNote
	CommandScrollDown
	CommandScrollUp
)

// keyToCommand maps a key event to a command, or CommandNone when the key
// should fall through to the focused view.
func keyToCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return CommandQuit
	case tcell.KeyDown:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return CommandNextNote
		}
	case tcell.KeyUp:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return CommandPreviousNote
		}
	case tcell.KeyCtrlL:
		return CommandSwitchToList
	case tcell.KeyCtrlE:
		return CommandSwitchToEditor
	case tcell.KeyCtrlP:
		return CommandSwitchToPreview
	case tcell.KeyCtrlN:
		return CommandNewNote
	case tcell.KeyCtrlS:
		return CommandSaveNote
	case tcell.KeyCtrlD:
		return CommandDeleteNote
	case tcell.KeyCtrlR:
		return CommandRenameNote
	case tcell.KeyCtrlJ:
		return CommandScrollDown
	case tcell.KeyCtrlK:
		return CommandScrollUp
	}
	return CommandNone
}
