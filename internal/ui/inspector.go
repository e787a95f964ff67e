package ui

import "fmt"

// Inspector is a panel under the toolbar that shows the selected control point.
// It owns its nodes and updates their text when AppendNodes is called with visible true.
type Inspector struct {
	panel *Node
	title *Node
	index *Node
	local *Node
	world *Node
}

// NewInspector creates an Inspector with nodes styled by .inspector, .inspector-title, etc.
func NewInspector() *Inspector {
	return &Inspector{
		panel: NewNode("panel", "inspector", "", ""),
		title: NewNode("label", "inspector-title", "", "Control point"),
		index: NewNode("label", "inspector-index", "", ""),
		local: NewNode("label", "inspector-local", "", ""),
		world: NewNode("label", "inspector-world", "", ""),
	}
}

// Selection holds the data shown in the inspector. ui does not depend on the editor; the
// caller copies the values in.
type Selection struct {
	Index int
	Local [3]float32 // mesh-local position
	World [3]float32 // after the mesh rotation
}

// AppendNodes appends inspector nodes to dst when visible is true, after updating labels from sel.
// When visible is false, dst is returned unchanged. Call every frame so visibility and content stay in sync.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, sel Selection) []*Node {
	if !visible {
		return dst
	}
	in.index.Text = fmt.Sprintf("Vertex: %d", sel.Index)
	in.local.Text = fmt.Sprintf("Local: %.3f, %.3f, %.3f", sel.Local[0], sel.Local[1], sel.Local[2])
	in.world.Text = fmt.Sprintf("World: %.3f, %.3f, %.3f", sel.World[0], sel.World[1], sel.World[2])
	return append(dst, in.panel, in.title, in.index, in.local, in.world)
}
