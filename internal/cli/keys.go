package cli

import "github.com/charmbracelet/bubbles/key"

// editorKeyMap defines the editor's keyboard bindings.
type editorKeyMap struct {
	Quit   key.Binding
	Toggle key.Binding
	Clear  key.Binding
}

func defaultEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
