package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit key.Binding
	Help key.Binding

	// Cursor
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Channel
	Step      key.Binding
	Mute      key.Binding
	Solo      key.Binding
	SelectOne key.Binding
	Add       key.Binding
	Remove    key.Binding

	// Pattern and transport
	PrevPattern key.Binding
	NextPattern key.Binding
	Play        key.Binding

	// Undo and fixtures
	SaveUndo key.Binding
	Undo     key.Binding
	Export   key.Binding
	Reset    key.Binding
	Save     key.Binding
	Load     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "previous channel"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "next channel"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "previous step"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "next step"),
		),

		Step: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle step"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Solo: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "solo"),
		),
		SelectOne: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select only"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add sampler"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove channel"),
		),

		PrevPattern: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous pattern"),
		),
		NextPattern: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next pattern"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play/pause"),
		),

		SaveUndo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "save undo"),
		),
		Undo: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "undo/redo"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "start/finish export"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset state"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save fixture"),
		),
		Load: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "load fixture"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Mute, k.Play, k.Undo, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Step, k.Mute, k.Solo, k.SelectOne, k.Add, k.Remove},
		{k.PrevPattern, k.NextPattern, k.Play},
		{k.SaveUndo, k.Undo, k.Export, k.Reset, k.Save, k.Load},
		{k.Help, k.Quit},
	}
}
