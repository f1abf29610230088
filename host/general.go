package host

import (
	"flmodel/undo"
)

// SaveUndo records an undo point named name
func (h *Host) SaveUndo(name string, flags int) error {
	if err := h.Guard.Check(opSaveUndo); err != nil {
		return err
	}
	undo.Save(h.live(), name, flags)
	return nil
}

// Undo undoes from the most recent point and redoes from anywhere else
func (h *Host) Undo() error {
	if err := h.Guard.Check(opUndo); err != nil {
		return err
	}
	undo.Toggle(h.live())
	return nil
}

func (h *Host) UndoUp() error {
	if err := h.Guard.Check(opUndoUp); err != nil {
		return err
	}
	undo.Up(h.live())
	return nil
}

func (h *Host) UndoDown() error {
	if err := h.Guard.Check(opUndoDown); err != nil {
		return err
	}
	undo.Down(h.live())
	return nil
}

// UndoUpDown moves by delta; positive redoes, negative undoes
func (h *Host) UndoUpDown(delta int) error {
	if err := h.Guard.Check(opUndoUpDown); err != nil {
		return err
	}
	undo.UpDown(h.live(), delta)
	return nil
}

// RestoreUndo behaves like Undo
func (h *Host) RestoreUndo() error {
	if err := h.Guard.Check(opRestoreUndo); err != nil {
		return err
	}
	undo.Toggle(h.live())
	return nil
}

// RestoreUndoLevel behaves like Undo. The host ignores level.
func (h *Host) RestoreUndoLevel(level int) error {
	if err := h.Guard.Check(opRestoreUndoLevel); err != nil {
		return err
	}
	undo.Toggle(h.live())
	return nil
}

func (h *Host) GetUndoLevelHint() (string, error) {
	if err := h.Guard.Check(opGetUndoLevelHint); err != nil {
		return "", err
	}
	return undo.LevelHint(h.live()), nil
}

func (h *Host) GetUndoHistoryPos() (int, error) {
	if err := h.Guard.Check(opGetUndoHistoryPos); err != nil {
		return 0, err
	}
	return undo.Pos(h.live()), nil
}

func (h *Host) GetUndoHistoryCount() (int, error) {
	if err := h.Guard.Check(opGetUndoHistoryCount); err != nil {
		return 0, err
	}
	return undo.Count(h.live()), nil
}

func (h *Host) GetUndoHistoryLast() (int, error) {
	if err := h.Guard.Check(opGetUndoHistoryLast); err != nil {
		return 0, err
	}
	return undo.Last(h.live()), nil
}

// SetUndoHistoryPos trims the history to its oldest n points
func (h *Host) SetUndoHistoryPos(n int) error {
	if err := h.Guard.Check(opSetUndoHistoryPos); err != nil {
		return err
	}
	return undo.SetPos(h.live(), n)
}

// SetUndoHistoryCount trims the history to its newest n points
func (h *Host) SetUndoHistoryCount(n int) error {
	if err := h.Guard.Check(opSetUndoHistoryCount); err != nil {
		return err
	}
	return undo.SetCount(h.live(), n)
}

func (h *Host) SetUndoHistoryLast(position int) error {
	if err := h.Guard.Check(opSetUndoHistoryLast); err != nil {
		return err
	}
	undo.SetLast(h.live(), position)
	return nil
}

// GetVersion returns the API version the state was created for
func (h *Host) GetVersion() (int, error) {
	if err := h.Guard.Check(opGetVersion); err != nil {
		return 0, err
	}
	return h.live().General.APIVersion, nil
}

// GetRecPPQ returns the timebase
func (h *Host) GetRecPPQ() (int, error) {
	if err := h.Guard.Check(opGetRecPPQ); err != nil {
		return 0, err
	}
	return h.live().General.PPQN, nil
}

// GetRecPPB returns the timebase multiplied by the beats in a bar
func (h *Host) GetRecPPB() (int, error) {
	if err := h.Guard.Check(opGetRecPPB); err != nil {
		return 0, err
	}
	g := h.live().General
	return g.PPQN * g.Beats, nil
}

func (h *Host) GetUseMetronome() (bool, error) {
	if err := h.Guard.Check(opGetUseMetronome); err != nil {
		return false, err
	}
	return h.live().General.Metronome, nil
}

func (h *Host) GetPrecount() (bool, error) {
	if err := h.Guard.Check(opGetPrecount); err != nil {
		return false, err
	}
	return h.live().General.PreCount, nil
}

// GetChangedFlag returns 1 when the project changed since it was saved
func (h *Host) GetChangedFlag() (int, error) {
	if err := h.Guard.Check(opGetChangedFlag); err != nil {
		return 0, err
	}
	if h.live().General.Changed {
		return 1, nil
	}
	return 0, nil
}
