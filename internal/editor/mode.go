package editor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for names other than view, edit and add.
var ErrUnknownMode = errors.New("unknown mode")

// Mode gates which pointer gestures are legal and what they do.
type Mode int

const (
	// ModeView: pointer drags rotate the whole mesh; control points are hidden.
	ModeView Mode = iota
	// ModeEdit: pointer-down picks a control point and drags it.
	ModeEdit
	// ModeAdd: pointer-down on a face subdivides it around the hit point.
	ModeAdd
)

// Modes lists every mode in toolbar order.
var Modes = []Mode{ModeView, ModeEdit, ModeAdd}

// String returns the lower-case mode name ("view", "edit", "add").
func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	case ModeEdit:
		return "edit"
	case ModeAdd:
		return "add"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the three modes.
func (m Mode) Valid() bool {
	return m >= ModeView && m <= ModeAdd
}

// ParseMode accepts a mode name, case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "view":
		return ModeView, nil
	case "edit":
		return ModeEdit, nil
	case "add":
		return ModeAdd, nil
	}
	return ModeView, fmt.Errorf("editor: %q: %w", s, ErrUnknownMode)
}
