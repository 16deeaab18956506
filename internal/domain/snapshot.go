package domain

import "fmt"

// Snapshot is the durable form of the whole tree plus the focus pointer.
// Parent IDs are not stored; they are implied by nesting.
type Snapshot struct {
	Root          *SnapshotNode `json:"root" yaml:"root"`
	CurrentTaskID string        `json:"current_task_id" yaml:"current_task_id"`
}

// SnapshotNode is the durable form of a single node.
type SnapshotNode struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Children []*SnapshotNode `json:"children" yaml:"children"`
}

// NewSnapshot captures root and the focus ID.
func NewSnapshot(root *Node, focusID string) *Snapshot {
	return &Snapshot{
		Root:          toSnapshotNode(root),
		CurrentTaskID: focusID,
	}
}

func toSnapshotNode(n *Node) *SnapshotNode {
	sn := &SnapshotNode{
		ID:       n.ID,
		Name:     n.Name,
		Children: make([]*SnapshotNode, 0, len(n.Children)),
	}
	for _, child := range n.Children {
		sn.Children = append(sn.Children, toSnapshotNode(child))
	}
	return sn
}

// Build rebuilds the live tree, assigning each child's ParentID from its
// container. Empty or duplicate IDs are reported as ErrInvalidSnapshot.
func (s *Snapshot) Build() (*Node, error) {
	if s == nil || s.Root == nil {
		return nil, fmt.Errorf("missing root: %w", ErrInvalidSnapshot)
	}
	seen := make(map[string]struct{})
	return buildNode(s.Root, "", seen)
}

func buildNode(sn *SnapshotNode, parentID string, seen map[string]struct{}) (*Node, error) {
	if sn == nil {
		return nil, fmt.Errorf("null child under %q: %w", parentID, ErrInvalidSnapshot)
	}
	if sn.ID == "" {
		return nil, fmt.Errorf("node %q has no id: %w", sn.Name, ErrInvalidSnapshot)
	}
	if _, dup := seen[sn.ID]; dup {
		return nil, fmt.Errorf("duplicate id %q: %w", sn.ID, ErrInvalidSnapshot)
	}
	seen[sn.ID] = struct{}{}

	n := NewNode(sn.ID, sn.Name, parentID)
	for _, child := range sn.Children {
		built, err := buildNode(child, sn.ID, seen)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, built)
	}
	return n, nil
}
