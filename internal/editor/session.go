package editor

import "github.com/go-gl/mathgl/mgl32"

// DragKind says what an active pointer drag is doing.
type DragKind int

const (
	DragNone DragKind = iota
	DragRotate
	DragControlPoint
)

// NoSelection is the Selected value when no control point is selected.
const NoSelection = -1

// Session is the interaction state shared by the mode router and the gesture resolver:
// current mode, active drag, selected control point and the last pointer position.
type Session struct {
	Mode     Mode
	Drag     DragKind
	Selected int
	Prev     mgl32.Vec2
}

func newSession() Session {
	return Session{Mode: ModeView, Selected: NoSelection}
}

// Dragging reports whether a drag is in progress.
func (s Session) Dragging() bool {
	return s.Drag != DragNone
}

func (s *Session) endDrag() {
	s.Drag = DragNone
}

func (s *Session) clearSelection() {
	s.Selected = NoSelection
}
