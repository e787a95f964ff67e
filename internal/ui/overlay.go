package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const hintText = "1 view   2 edit   3 add   R reset   ESC console"

// State is what the overlay shows for one frame.
type State struct {
	Mode      string // active toolbar action
	Selected  bool
	Selection Selection
	ShowHint  bool
}

// Overlay is the editor's 2D layer: toolbar, inspector and key hint, drawn by one Engine.
// OnAction is called with the button's action when a toolbar button is clicked.
type Overlay struct {
	engine    *Engine
	toolbar   *Toolbar
	inspector *Inspector
	hint      *Node
	nodes     []*Node
	OnAction  func(action string)
}

// NewOverlay returns an overlay drawn with engine.
func NewOverlay(engine *Engine) *Overlay {
	return &Overlay{
		engine:    engine,
		toolbar:   NewToolbar(),
		inspector: NewInspector(),
		hint:      NewNode("label", "hint", "", hintText),
	}
}

// Click handles a pointer press at p. It returns true when the press landed on the overlay,
// in which case the 3D view must ignore it.
func (o *Overlay) Click(p rl.Vector2) bool {
	if n := o.engine.HitTest(p); n != nil {
		if o.OnAction != nil {
			o.OnAction(n.Action)
		}
		return true
	}
	return o.engine.Covers(p)
}

// Draw rebuilds the node list from st and draws it.
func (o *Overlay) Draw(st State) {
	o.nodes = o.toolbar.AppendNodes(o.nodes[:0], st.Mode)
	o.nodes = o.inspector.AppendNodes(o.nodes, st.Selected, st.Selection)
	if st.ShowHint {
		o.nodes = append(o.nodes, o.hint)
	}
	o.engine.SetNodes(o.nodes)
	o.engine.Draw()
}
