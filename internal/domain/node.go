// Package domain contains the task tree entities, lookups, and ports.
package domain

// RootName is the name given to a freshly created root node.
const RootName = "Root"

// Node is one task in the focus tree.
// ID and ParentID are fixed at creation; only Name changes afterwards.
type Node struct {
	ID       string  // Globally unique, never reused
	Name     string  // Display name
	ParentID string  // Owning node's ID ("" for the root)
	Children []*Node // Owned children in creation order
}

// NewNode creates a node owned by parentID. Pass "" for the root.
func NewNode(id, name, parentID string) *Node {
	return &Node{
		ID:       id,
		Name:     name,
		ParentID: parentID,
		Children: []*Node{},
	}
}

// IsRoot returns true if the node has no parent.
func (n *Node) IsRoot() bool {
	return n.ParentID == ""
}

// AddChild creates a child with the given id and name and appends it.
func (n *Node) AddChild(id, name string) *Node {
	child := NewNode(id, name, n.ID)
	n.Children = append(n.Children, child)
	return child
}
