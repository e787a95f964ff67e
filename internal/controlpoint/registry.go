// Package controlpoint keeps one draggable handle per mesh vertex. Handles mirror the vertex
// positions of a geometry buffer for display and drag, and write back into it on edit.
package controlpoint

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrAliased is returned by Create when the vertex index already has a handle.
	ErrAliased = errors.New("vertex already has a control point")
	// ErrUnknownHandle is returned when a handle is not (or no longer) in the registry.
	ErrUnknownHandle = errors.New("unknown control point")
)

// PositionSource is the read side of a geometry buffer.
type PositionSource interface {
	PositionAt(i int) (mgl32.Vec3, error)
}

// PositionSink is the write side of a geometry buffer.
type PositionSink interface {
	WritePosition(i int, p mgl32.Vec3) error
}

// Handle is a control point bound to exactly one vertex index. Position is in mesh-local space;
// the renderer composes it with the mesh transform.
type Handle struct {
	index    int
	Position mgl32.Vec3
	Visible  bool
}

// Index returns the vertex index the handle owns. It never changes for the life of the handle.
func (h *Handle) Index() int {
	return h.index
}

// Registry holds handles ordered by vertex index.
type Registry struct {
	byIndex map[int]*Handle
	order   []*Handle
	visible bool
}

// NewRegistry returns an empty registry with handles hidden.
func NewRegistry() *Registry {
	return &Registry{byIndex: make(map[int]*Handle)}
}

// Create registers a handle for vertex index at position. The handle takes the registry's
// current visibility. Fails with ErrAliased if index already has a handle.
func (r *Registry) Create(index int, position mgl32.Vec3) (*Handle, error) {
	if index < 0 {
		return nil, fmt.Errorf("controlpoint: create %d: negative index", index)
	}
	if _, ok := r.byIndex[index]; ok {
		return nil, fmt.Errorf("controlpoint: create %d: %w", index, ErrAliased)
	}
	h := &Handle{index: index, Position: position, Visible: r.visible}
	r.byIndex[index] = h
	i := sort.Search(len(r.order), func(i int) bool { return r.order[i].index > index })
	r.order = append(r.order, nil)
	copy(r.order[i+1:], r.order[i:])
	r.order[i] = h
	return h, nil
}

// Remove unregisters h.
func (r *Registry) Remove(h *Handle) error {
	if h == nil || r.byIndex[h.index] != h {
		return fmt.Errorf("controlpoint: remove: %w", ErrUnknownHandle)
	}
	delete(r.byIndex, h.index)
	for i, o := range r.order {
		if o == h {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// At returns the handle owning vertex index, if any.
func (r *Registry) At(index int) (*Handle, bool) {
	h, ok := r.byIndex[index]
	return h, ok
}

// Len returns the number of handles.
func (r *Registry) Len() int {
	return len(r.order)
}

// ForEach calls visit for every handle in vertex index order. visit must not add or remove handles.
func (r *Registry) ForEach(visit func(h *Handle)) {
	for _, h := range r.order {
		visit(h)
	}
}

// SetVisibility shows or hides every handle at once. Handles created later inherit it.
func (r *Registry) SetVisibility(visible bool) {
	r.visible = visible
	for _, h := range r.order {
		h.Visible = visible
	}
}

// Visible reports the visibility last set with SetVisibility.
func (r *Registry) Visible() bool {
	return r.visible
}

// SyncFromGeometry pulls every handle's position from src, e.g. after a reset rewrote the buffer.
// Stops at the first handle whose vertex src does not have.
func (r *Registry) SyncFromGeometry(src PositionSource) error {
	for _, h := range r.order {
		p, err := src.PositionAt(h.index)
		if err != nil {
			return fmt.Errorf("controlpoint: sync from geometry: %w", err)
		}
		h.Position = p
	}
	return nil
}

// SyncToGeometry pushes h's position into dst at the vertex it owns.
func (r *Registry) SyncToGeometry(h *Handle, dst PositionSink) error {
	if h == nil || r.byIndex[h.index] != h {
		return fmt.Errorf("controlpoint: sync to geometry: %w", ErrUnknownHandle)
	}
	if err := dst.WritePosition(h.index, h.Position); err != nil {
		return fmt.Errorf("controlpoint: sync to geometry: %w", err)
	}
	return nil
}
