// Package catalog holds the static menu tree: named script entries
// grouped into arbitrarily nested categories. The tree is built once at
// startup and is read-only afterwards; nodes are addressed by stable
// integer handles so navigation state can reference them cheaply.
package catalog

// NodeID is an opaque handle into the tree's node arena. The zero value
// is the root.
type NodeID int

// Root is the identity of the tree root. The root carries a placeholder
// item and is never displayed or resolved.
const Root NodeID = 0

// Item is the displayable payload of a tree node.
type Item struct {
	Name   string
	Action Action
}

type node struct {
	item     Item
	parent   NodeID
	children []NodeID
}

// Tree is an ordered, rooted multi-way tree of Items stored in a flat
// arena. Child order is insertion order and is the display order.
type Tree struct {
	nodes []node
}

// Builder assembles a Tree. Add may be called in any order as long as
// the parent handle was returned by an earlier Add (or is Root).
type Builder struct {
	nodes []node
}

// NewBuilder starts a tree with an empty placeholder root.
func NewBuilder() *Builder {
	return &Builder{
		nodes: []node{{item: Item{Name: "root", Action: NoAction{}}, parent: -1}},
	}
}

// Add appends a child under parent and returns its handle.
func (b *Builder) Add(parent NodeID, item Item) NodeID {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, node{item: item, parent: parent})
	b.nodes[parent].children = append(b.nodes[parent].children, id)
	return id
}

// Group adds an internal node with a placeholder action.
func (b *Builder) Group(parent NodeID, name string) NodeID {
	return b.Add(parent, Item{Name: name, Action: NoAction{}})
}

// Build finalises the tree. The builder must not be reused afterwards.
func (b *Builder) Build() *Tree {
	t := &Tree{nodes: b.nodes}
	b.nodes = nil
	return t
}

// Item returns the payload for id.
func (t *Tree) Item(id NodeID) Item {
	return t.nodes[id].item
}

// Children returns the ordered child handles of id. The returned slice
// must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].children
}

// HasChildren reports whether id is a group. This, not the action tag,
// is the group/command discriminator.
func (t *Tree) HasChildren(id NodeID) bool {
	return len(t.nodes[id].children) > 0
}

// Parent returns the parent of id, or Root for the root itself.
func (t *Tree) Parent(id NodeID) NodeID {
	if t.nodes[id].parent < 0 {
		return Root
	}
	return t.nodes[id].parent
}

// Len returns the number of nodes including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Walk visits every node below the root in depth-first display order.
// depth is 1 for top-level entries.
func (t *Tree) Walk(fn func(id NodeID, depth int)) {
	var walk func(id NodeID, depth int)
	walk = func(id NodeID, depth int) {
		for _, child := range t.nodes[id].children {
			fn(child, depth+1)
			walk(child, depth+1)
		}
	}
	walk(Root, 0)
}
