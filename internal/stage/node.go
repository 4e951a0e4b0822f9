package stage

import "errors"

// ErrDestroyed is returned when drawing into or attaching to a node that
// has already been torn down.
var ErrDestroyed = errors.New("stage: node destroyed")

// Node is a mutable scene-graph node. Each node owns one canvas layer and
// an ordered list of children; rendering composites layers depth-first in
// insertion order, so later siblings draw over earlier ones.
type Node struct {
	name      string
	canvas    *Canvas
	parent    *Node
	children  []*Node
	visible   bool
	destroyed bool
}

func newNode(name string, w, h int) *Node {
	return &Node{
		name:    name,
		canvas:  NewCanvas(w, h),
		visible: true,
	}
}

// Name returns the debug name the node was created with.
func (n *Node) Name() string { return n.name }

// Canvas returns the node's own drawing layer, or nil once destroyed.
func (n *Node) Canvas() *Canvas {
	if n == nil || n.destroyed {
		return nil
	}
	return n.canvas
}

// Visible reports whether the node and its subtree are composited.
func (n *Node) Visible() bool { return n != nil && !n.destroyed && n.visible }

// SetVisible toggles compositing of the node and its subtree.
func (n *Node) SetVisible(v bool) {
	if n == nil || n.destroyed {
		return
	}
	n.visible = v
}

// Destroyed reports whether Destroy has run.
func (n *Node) Destroyed() bool { return n == nil || n.destroyed }

// NewChild creates a child layer with the same dimensions as n and appends
// it to the composition order.
func (n *Node) NewChild(name string) (*Node, error) {
	if n == nil || n.destroyed {
		return nil, ErrDestroyed
	}
	child := newNode(name, n.canvas.Width, n.canvas.Height)
	child.parent = n
	n.children = append(n.children, child)
	return child, nil
}

// Detach removes child from n without destroying it. Unknown children are
// ignored.
func (n *Node) Detach(child *Node) {
	if n == nil || child == nil {
		return
	}
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Resize replaces the node's canvas (and every descendant's) with a fresh
// one of the given cell dimensions. All layer content is dropped.
func (n *Node) Resize(w, h int) {
	if n == nil || n.destroyed {
		return
	}
	n.canvas = NewCanvas(w, h)
	for _, c := range n.children {
		c.Resize(w, h)
	}
}

// Destroy tears down the node and its entire subtree. It is idempotent and
// tolerates children that were already destroyed individually; a destroyed
// node detaches from its parent so it no longer composites.
func (n *Node) Destroy() {
	if n == nil || n.destroyed {
		return
	}
	n.destroyed = true
	// Children detach themselves as they go down; hand them a stable list.
	kids := n.children
	n.children = nil
	for _, c := range kids {
		c.Destroy()
	}
	if n.parent != nil {
		n.parent.Detach(n)
	}
	n.canvas = nil
}

// compositeInto ORs the node's layer and its visible subtree into dst.
func (n *Node) compositeInto(dst *Canvas) {
	if n == nil || n.destroyed || !n.visible {
		return
	}
	dst.Merge(n.canvas)
	for _, c := range n.children {
		c.compositeInto(dst)
	}
}
