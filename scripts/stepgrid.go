// Package scripts holds controller scripts that run against the emulated
// host. They exercise the host API the same way a script loaded by the
// real host would.
package scripts

import (
	"flmodel/debug"
	"flmodel/device"
	"flmodel/host"
)

// Launchpad X palette velocities
const (
	ColorOff    uint8 = 0
	ColorWhite  uint8 = 3
	ColorRed    uint8 = 5
	ColorYellow uint8 = 13
	ColorGreen  uint8 = 21
	ColorBlue   uint8 = 45
)

// Top row controls, sent as CCs
const (
	ccChannelsUp   = 91
	ccChannelsDown = 92
	ccStepsLeft    = 93
	ccStepsRight   = 94
)

// GridSize is the number of pads per side of the grid
const GridSize = 8

var (
	programmerMode = []byte{0xF0, 0x00, 0x20, 0x29, 0x02, 0x0C, 0x00, 0x7F, 0xF7}
	liveMode       = []byte{0xF0, 0x00, 0x20, 0x29, 0x02, 0x0C, 0x00, 0x00, 0xF7}
)

// StepGrid edits the active pattern from an 8x8 pad grid. Each row is a
// channel in the selected group, top row first, and each column a step.
// The scene buttons on the right jump to patterns 1 to 8.
type StepGrid struct {
	host          *host.Host
	channelOffset int
	stepOffset    int
}

// NewStepGrid creates the script for h
func NewStepGrid(h *host.Host) *StepGrid {
	return &StepGrid{host: h}
}

// Script returns the callbacks to register with a router
func (g *StepGrid) Script() *device.Script {
	return &device.Script{
		OnInit:          g.onInit,
		OnDeInit:        g.onDeInit,
		OnNoteOn:        g.onNoteOn,
		OnNoteOff:       func(msg *device.Message) { msg.Handled = true },
		OnControlChange: g.onControlChange,
		OnDoFullRefresh: g.Redraw,
		OnRefresh:       func(int) { g.Redraw() },
	}
}

// Offsets returns the first channel and step shown on the grid
func (g *StepGrid) Offsets() (channel, step int) {
	return g.channelOffset, g.stepOffset
}

func (g *StepGrid) onInit() {
	if err := g.host.MidiOutSysex(programmerMode); err != nil {
		debug.Log("stepgrid", "init: %v", err)
		return
	}
	g.Redraw()
}

func (g *StepGrid) onDeInit() {
	g.clear()
	if err := g.host.MidiOutSysex(liveMode); err != nil {
		debug.Log("stepgrid", "deinit: %v", err)
	}
}

func (g *StepGrid) onNoteOn(msg *device.Message) {
	msg.Handled = true
	if msg.Velocity() == 0 {
		return
	}
	row, col := noteToRowCol(msg.Note())
	switch {
	case row < 0:
		return
	case col == GridSize:
		if err := g.host.JumpToPattern(GridSize - row); err != nil {
			debug.Log("stepgrid", "jump: %v", err)
		}
	default:
		g.toggle(row, col)
	}
	g.Redraw()
}

func (g *StepGrid) onControlChange(msg *device.Message) {
	if msg.Value() == 0 {
		return
	}
	switch msg.Control() {
	case ccChannelsUp:
		g.channelOffset = max(g.channelOffset-1, 0)
	case ccChannelsDown:
		if n, err := g.host.ChannelCount(false); err == nil && g.channelOffset+GridSize < n {
			g.channelOffset++
		}
	case ccStepsLeft:
		g.stepOffset = max(g.stepOffset-GridSize, 0)
	case ccStepsRight:
		g.stepOffset += GridSize
	default:
		return
	}
	msg.Handled = true
	g.Redraw()
}

// channelAt maps a grid row to a group index, or -1 past the last channel
func (g *StepGrid) channelAt(row int) int {
	idx := g.channelOffset + (GridSize - 1 - row)
	n, err := g.host.ChannelCount(false)
	if err != nil || idx >= n {
		return -1
	}
	return idx
}

func (g *StepGrid) toggle(row, col int) {
	ch := g.channelAt(row)
	if ch < 0 {
		return
	}
	step := g.stepOffset + col
	on, err := g.host.GetGridBit(ch, step)
	if err != nil {
		debug.Log("stepgrid", "read %d/%d: %v", ch, step, err)
		return
	}
	if err := g.host.SetGridBit(ch, step, !on); err != nil {
		debug.Log("stepgrid", "write %d/%d: %v", ch, step, err)
	}
}

// Redraw sends every pad's color to the device
func (g *StepGrid) Redraw() {
	active, err := g.host.PatternNumber()
	if err != nil {
		return
	}
	for row := 0; row < GridSize; row++ {
		ch := g.channelAt(row)
		for col := 0; col < GridSize; col++ {
			color := ColorOff
			if ch >= 0 {
				color = ColorWhite
				if on, _ := g.host.GetGridBit(ch, g.stepOffset+col); on {
					color = ColorGreen
				}
			}
			g.light(row, col, color)
		}
		scene := ColorBlue
		if GridSize-row == active {
			scene = ColorYellow
		}
		g.light(row, GridSize, scene)
	}
}

func (g *StepGrid) clear() {
	for row := 0; row < GridSize; row++ {
		for col := 0; col <= GridSize; col++ {
			g.light(row, col, ColorOff)
		}
	}
}

func (g *StepGrid) light(row, col int, color uint8) {
	if err := g.host.MidiOutMsg(int(device.StatusNoteOn>>4), 0, int(rowColToNote(row, col)), int(color)); err != nil {
		debug.Log("stepgrid", "led %d,%d: %v", row, col, err)
	}
}

// Programmer mode layout: row 0 (bottom) is notes 11-18, the scene
// column is 19, 29 ... 89
func rowColToNote(row, col int) uint8 {
	return uint8((row+1)*10 + col + 1)
}

func noteToRowCol(note uint8) (row, col int) {
	row = int(note/10) - 1
	col = int(note%10) - 1
	if row < 0 || row >= GridSize || col < 0 || col > GridSize {
		return -1, -1
	}
	return row, col
}
