package editor

import (
	"github.com/go-gl/mathgl/mgl32"

	"mesh-editor/internal/controlpoint"
	"mesh-editor/internal/picking"
)

// Action is what a pointer-down resolved to.
type Action int

const (
	ActionNone Action = iota
	ActionRotate
	ActionSelect
	ActionSubdivide
)

func (a Action) String() string {
	switch a {
	case ActionRotate:
		return "rotate"
	case ActionSelect:
		return "select"
	case ActionSubdivide:
		return "subdivide"
	}
	return "none"
}

// PointerDown handles a press at screen (pixels). In view mode it starts a rotation drag. In edit
// mode it picks the nearest visible control point and starts dragging it; a miss clears the
// selection and starts nothing. In add mode it subdivides the nearest face under the pointer.
// A drag still open from a lost pointer-up is ended first.
func (e *Editor) PointerDown(screen mgl32.Vec2) (Action, error) {
	e.session.endDrag()
	e.session.Prev = screen
	switch e.session.Mode {
	case ModeView:
		e.session.clearSelection()
		e.session.Drag = DragRotate
		return ActionRotate, nil
	case ModeEdit:
		idx, ok := e.pickControlPoint(e.cam.Ray(screen))
		if !ok {
			e.session.clearSelection()
			return ActionNone, nil
		}
		e.session.Selected = idx
		e.session.Drag = DragControlPoint
		return ActionSelect, nil
	case ModeAdd:
		e.session.clearSelection()
		hit, ok := e.pickFace(e.cam.Ray(screen))
		if !ok {
			return ActionNone, nil
		}
		res, err := e.Subdivide(hit.Triangle, hit.Point)
		if err != nil {
			return ActionNone, err
		}
		if res.Skipped {
			return ActionNone, nil
		}
		return ActionSubdivide, nil
	}
	return ActionNone, nil
}

// PointerMove applies the pointer delta since the previous event to the active drag.
// Without an active drag it only records the position.
func (e *Editor) PointerMove(screen mgl32.Vec2) error {
	delta := screen.Sub(e.session.Prev)
	e.session.Prev = screen
	switch e.session.Drag {
	case DragRotate:
		e.rotate(delta)
	case DragControlPoint:
		h, ok := e.points.At(e.session.Selected)
		if !ok {
			e.session.endDrag()
			return nil
		}
		return e.dragHandle(h, delta)
	}
	return nil
}

// PointerUp ends any drag. Edit mode keeps the selection; the other modes clear it.
func (e *Editor) PointerUp(screen mgl32.Vec2) {
	e.session.Prev = screen
	e.session.endDrag()
	if e.session.Mode != ModeEdit {
		e.session.clearSelection()
	}
}

// rotate turns the mesh: delta.x drives yaw, delta.y drives pitch.
func (e *Editor) rotate(delta mgl32.Vec2) {
	e.transform.Yaw += delta.X() * e.opts.RotateSensitivity
	e.transform.Pitch += delta.Y() * e.opts.RotateSensitivity
}

// DragOffset converts a screen delta into a world-space offset along the camera's right and up
// vectors. Screen y grows downward, so it is negated.
func (e *Editor) DragOffset(delta mgl32.Vec2) mgl32.Vec3 {
	s := e.opts.DragSensitivity
	return e.cam.Right().Mul(delta.X() * s).Sub(e.cam.Up().Mul(delta.Y() * s))
}

func (e *Editor) dragHandle(h *controlpoint.Handle, delta mgl32.Vec2) error {
	local := e.transform.ToLocal(e.DragOffset(delta))
	return e.placeHandle(h, h.Position.Add(local))
}

// pickControlPoint returns the vertex index of the nearest visible control point under r.
func (e *Editor) pickControlPoint(r picking.Ray) (int, bool) {
	spheres := make([]picking.Sphere, 0, e.points.Len())
	e.points.ForEach(func(h *controlpoint.Handle) {
		if !h.Visible {
			return
		}
		spheres = append(spheres, picking.Sphere{
			ID:     h.Index(),
			Center: e.transform.ToWorld(h.Position),
			Radius: e.opts.ControlPointRadius,
		})
	})
	hit, ok := picking.NearestSphere(r, spheres)
	return hit.ID, ok
}

// pickFace intersects r with the mesh in mesh-local space so the hit point can go straight into
// the vertex list.
func (e *Editor) pickFace(r picking.Ray) (picking.MeshHit, bool) {
	local := r.Transform(e.transform.Model().Transpose())
	return picking.IntersectMesh(local, e.geom)
}
