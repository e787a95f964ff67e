package ui

// Toolbar actions. The mode actions share their names with the editor's modes.
const (
	ActionView  = "view"
	ActionEdit  = "edit"
	ActionAdd   = "add"
	ActionReset = "reset"
)

// Toolbar is the row of mode buttons plus Reset. The button of the active mode is drawn with the
// .tool-active class, the others with .tool.
type Toolbar struct {
	panel   *Node
	buttons []*Node
}

// NewToolbar creates the View, Edit, Add and Reset buttons (#tool-view, #tool-edit, ...).
func NewToolbar() *Toolbar {
	return &Toolbar{
		panel: NewNode("panel", "toolbar", "", ""),
		buttons: []*Node{
			NewButton("tool", "tool-view", "View", ActionView),
			NewButton("tool", "tool-edit", "Edit", ActionEdit),
			NewButton("tool", "tool-add", "Add", ActionAdd),
			NewButton("tool", "tool-reset", "Reset", ActionReset),
		},
	}
}

// AppendNodes marks the button whose action equals active and appends the toolbar nodes to dst.
func (tb *Toolbar) AppendNodes(dst []*Node, active string) []*Node {
	dst = append(dst, tb.panel)
	for _, b := range tb.buttons {
		b.Class = "tool"
		if b.Action == active {
			b.Class = "tool-active"
		}
		dst = append(dst, b)
	}
	return dst
}
