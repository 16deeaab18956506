package domain

// FindTaskByID searches depth-first from start and returns the first node
// whose ID matches, or nil.
func FindTaskByID(start *Node, id string) *Node {
	if start == nil {
		return nil
	}
	if start.ID == id {
		return start
	}
	for _, child := range start.Children {
		if found := FindTaskByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// FindParent returns the direct parent of the node with the same ID as
// target, searching from root. It returns nil if target is the root or
// is not in the tree.
func FindParent(root, target *Node) *Node {
	if root == nil || target == nil {
		return nil
	}
	for _, child := range root.Children {
		if child.ID == target.ID {
			return root
		}
		if found := FindParent(child, target); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node depth-first (pre-order). depth is 0 for start.
// Returning false from fn stops the walk.
func Walk(start *Node, fn func(n *Node, depth int) bool) {
	walk(start, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// PathTo returns the nodes from root down to the node with the given ID,
// inclusive. It returns nil if the ID is not in the tree.
func PathTo(root *Node, id string) []*Node {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return []*Node{root}
	}
	for _, child := range root.Children {
		if rest := PathTo(child, id); rest != nil {
			return append([]*Node{root}, rest...)
		}
	}
	return nil
}

// Depth returns the number of edges between root and the node with the
// given ID, or -1 if it is not in the tree.
func Depth(root *Node, id string) int {
	return len(PathTo(root, id)) - 1
}

// Count returns the number of nodes in the subtree rooted at start.
func Count(start *Node) int {
	n := 0
	Walk(start, func(*Node, int) bool {
		n++
		return true
	})
	return n
}
