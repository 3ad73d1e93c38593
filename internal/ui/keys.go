package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	Execute     key.Binding
	Add         key.Binding
	Edit        key.Binding
	Remove      key.Binding
	Copy        key.Binding
	ClearSearch key.Binding

	Save   key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("<c>", "Quit or cancel")),
		Up:          key.NewBinding(key.WithKeys("up")),
		Down:        key.NewBinding(key.WithKeys("down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown")),
		Home:        key.NewBinding(key.WithKeys("home")),
		End:         key.NewBinding(key.WithKeys("end")),
		Execute:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("<Enter>", "Execute")),
		Add:         key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("<a>", "Add")),
		Edit:        key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("<e>", "Edit")),
		Remove:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("<r>", "Remove")),
		Copy:        key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("<y>", "Copy")),
		ClearSearch: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("<u>", "Clear")),
		Save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("<s>", "Save")),
		Cancel:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("<c>", "Cancel")),
	}
}

// browseHelp lists the Ctrl chords shown in the instructions line.
func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Edit, k.Copy, k.ClearSearch, k.Quit}
}

func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cancel}
}
