// Package tui is the state inspector: a live view of the emulated host
// whose keys drive the same fixture and host calls a test would make.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flmodel/channels"
	"flmodel/host"
	"flmodel/state"
	"flmodel/theme"
	"flmodel/widgets"
)

// VisibleSteps is the width of the step grid
const VisibleSteps = 16

type Model struct {
	Host        *host.Host
	Theme       *theme.Theme
	FixturePath string

	keys       keyMap
	help       help.Model
	cursorRow  int // group index
	cursorStep int // absolute step
	status     string
	failed     bool
	endExport  func()
	quitting   bool
}

func NewModel(h *host.Host, th *theme.Theme, fixturePath string) Model {
	return Model{
		Host:        h,
		Theme:       th,
		FixturePath: fixturePath,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var err error
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Up):
		m.cursorRow = max(m.cursorRow-1, 0)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursorRow++
	case key.Matches(keyMsg, m.keys.Left):
		m.cursorStep = max(m.cursorStep-1, 0)
	case key.Matches(keyMsg, m.keys.Right):
		m.cursorStep++

	case key.Matches(keyMsg, m.keys.Step):
		var on bool
		if on, err = m.Host.GetGridBit(m.cursorRow, m.cursorStep); err == nil {
			err = m.Host.SetGridBit(m.cursorRow, m.cursorStep, !on)
		}
	case key.Matches(keyMsg, m.keys.Mute):
		err = m.Host.MuteChannel(m.cursorRow, -1)
	case key.Matches(keyMsg, m.keys.Solo):
		err = m.Host.SoloChannel(m.cursorRow)
	case key.Matches(keyMsg, m.keys.SelectOne):
		err = m.Host.SelectOneChannel(m.cursorRow)
	case key.Matches(keyMsg, m.keys.Add):
		err = m.addChannel()
	case key.Matches(keyMsg, m.keys.Remove):
		err = m.removeChannel()

	case key.Matches(keyMsg, m.keys.NextPattern):
		err = m.jump(1)
	case key.Matches(keyMsg, m.keys.PrevPattern):
		err = m.jump(-1)
	case key.Matches(keyMsg, m.keys.Play):
		err = m.Host.Start()

	case key.Matches(keyMsg, m.keys.SaveUndo):
		err = m.Host.SaveUndo("Inspector edit", 0)
	case key.Matches(keyMsg, m.keys.Undo):
		err = m.Host.Undo()
	case key.Matches(keyMsg, m.keys.Export):
		if m.endExport == nil {
			m.endExport = m.Host.ExportProject()
			m.setStatus("exporting")
		} else {
			m.endExport()
			m.endExport = nil
			m.setStatus("export finished")
		}
	case key.Matches(keyMsg, m.keys.Reset):
		err = m.Host.Store.Reset()
		m.endExport = nil
		if err == nil {
			m.setStatus("reset")
		}
	case key.Matches(keyMsg, m.keys.Save):
		if err = m.Host.Store.SaveFixture(m.FixturePath); err == nil {
			m.setStatus("saved " + m.FixturePath)
		}
	case key.Matches(keyMsg, m.keys.Load):
		if err = m.Host.Store.LoadFixture(m.FixturePath); err == nil {
			m.setStatus("loaded " + m.FixturePath)
		}
	default:
		return m, nil
	}

	if err != nil {
		m.status = err.Error()
		m.failed = true
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) addChannel() error {
	s := m.Host.Store.Get()
	idx, err := channels.AddSampler(s, fmt.Sprintf("Sampler %d", len(s.Channels.List)+1))
	if err != nil {
		return err
	}
	m.setStatus(fmt.Sprintf("added channel %d", idx))
	return nil
}

func (m *Model) removeChannel() error {
	global, err := m.Host.GetChannelIndex(m.cursorRow)
	if err != nil {
		return err
	}
	if err := channels.Remove(m.Host.Store.Get(), global); err != nil {
		return err
	}
	m.setStatus(fmt.Sprintf("removed channel %d", global))
	return nil
}

func (m *Model) jump(delta int) error {
	n, err := m.Host.PatternNumber()
	if err != nil {
		return err
	}
	last, err := m.Host.PatternMax()
	if err != nil {
		return err
	}
	target := n + delta
	if target < 1 || target > last {
		return nil
	}
	return m.Host.JumpToPattern(target)
}

func (m *Model) clampCursor() {
	n, err := m.Host.ChannelCount(false)
	if err != nil {
		return
	}
	m.cursorRow = max(min(m.cursorRow, n-1), 0)
}

// stepOffset is the first visible step
func (m Model) stepOffset() int {
	return m.cursorStep / VisibleSteps * VisibleSteps
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.Host.Store.Get()

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())

	playState := "STOP"
	if s.Transport.Playing {
		playState = "PLAY"
	}
	pattern := "?"
	if p, err := m.Host.PatternDisplayName(s.Patterns.Active); err == nil {
		pattern = p
	}
	header := headerStyle.Render(fmt.Sprintf("flmodel  API %d  %s  %s  undo %s  %v",
		s.General.APIVersion, playState, pattern, undoHint(m.Host), s.General.Busy))

	var grid strings.Builder
	offset := m.stepOffset()
	grid.WriteString(widgets.RenderStepRuler(m.Theme, offset, VisibleSteps))
	grid.WriteString("\n")
	for row, global := range channels.InSelectedGroup(s) {
		c := s.Channels.List[global]
		cr := widgets.ChannelRow{
			Name:     c.Name,
			Color:    c.Color,
			Muted:    c.Muted,
			Selected: c.Selected,
			Steps:    make([]bool, VisibleSteps),
		}
		for i := range cr.Steps {
			cr.Steps[i], _ = m.Host.GetGridBit(row, offset+i)
		}
		cursor := -1
		if row == m.cursorRow {
			cursor = m.cursorStep - offset
		}
		grid.WriteString(widgets.RenderChannelRow(m.Theme, cr, cursor))
		grid.WriteString("\n")
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(grid.String())
	out.WriteString("\n")
	out.WriteString(m.help.View(m.keys))

	if m.status != "" {
		style := lipgloss.NewStyle().Foreground(m.Theme.FG())
		if m.failed {
			style = style.Foreground(m.Theme.Warning())
		}
		out.WriteString("\n")
		out.WriteString(style.Render(m.status))
	}

	return out.String()
}

func undoHint(h *host.Host) string {
	hint, err := h.GetUndoLevelHint()
	if err != nil {
		return "?"
	}
	return hint
}

// Status returns the last status line and whether it reports a failure
func (m Model) Status() (string, bool) {
	return m.status, m.failed
}

// Cursor returns the selected channel (group index) and step
func (m Model) Cursor() (row, step int) {
	return m.cursorRow, m.cursorStep
}

// IsBusy reports whether the inspector is holding the host in an export
func (m Model) IsBusy() bool {
	return m.endExport != nil && m.Host.Store.Get().General.Busy == state.Exporting
}

var _ tea.Model = Model{}
