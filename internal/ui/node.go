package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label or button. It has optional class and id for CSS
// matching, bounds (position and size), optional text, and for buttons the action a click fires.
type Node struct {
	Type   string // "panel", "label", "button"
	Class  string // e.g. "tool" for .tool
	ID     string // e.g. "tool-edit" for #tool-edit
	Bounds rl.Rectangle
	Text   string
	Action string // buttons only
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// NewButton creates a clickable node that reports action when hit.
func NewButton(class, id, text, action string) *Node {
	n := NewNode("button", class, id, text)
	n.Action = action
	return n
}
