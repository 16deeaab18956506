package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree builds:
//
//	Root
//	├── A
//	│   ├── A1
//	│   └── A2
//	└── B
func sampleTree() *Node {
	root := NewNode("root", RootName, "")
	a := root.AddChild("a", "A")
	a.AddChild("a1", "A1")
	a.AddChild("a2", "A2")
	root.AddChild("b", "B")
	return root
}

func TestNode_AddChild(t *testing.T) {
	root := NewNode("root", RootName, "")

	child := root.AddChild("c", "Child")

	assert.Equal(t, "root", child.ParentID)
	assert.False(t, child.IsRoot())
	assert.True(t, root.IsRoot())
	assert.NotNil(t, child.Children)
	assert.Equal(t, []*Node{child}, root.Children)
}

func TestFindTaskByID(t *testing.T) {
	root := sampleTree()

	tests := []struct {
		id   string
		want string
	}{
		{"root", RootName},
		{"a", "A"},
		{"a2", "A2"},
		{"b", "B"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := FindTaskByID(root, tt.id)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Name)
		})
	}

	assert.Nil(t, FindTaskByID(root, "missing"))
	assert.Nil(t, FindTaskByID(nil, "a"))
}

func TestFindTaskByID_FromSubtree(t *testing.T) {
	root := sampleTree()
	a := FindTaskByID(root, "a")

	assert.NotNil(t, FindTaskByID(a, "a1"))
	assert.Nil(t, FindTaskByID(a, "b"))
}

func TestFindParent(t *testing.T) {
	root := sampleTree()

	parent := FindParent(root, FindTaskByID(root, "a2"))
	require.NotNil(t, parent)
	assert.Equal(t, "a", parent.ID)

	parent = FindParent(root, FindTaskByID(root, "b"))
	require.NotNil(t, parent)
	assert.Equal(t, "root", parent.ID)

	assert.Nil(t, FindParent(root, root))
	assert.Nil(t, FindParent(root, NewNode("stranger", "S", "root")))
	assert.Nil(t, FindParent(root, nil))
}

func TestFindParent_ByIdentityNotContent(t *testing.T) {
	root := NewNode("root", RootName, "")
	first := root.AddChild("x", "Same")
	second := first.AddChild("y", "Same")

	parent := FindParent(root, second)
	require.NotNil(t, parent)
	assert.Equal(t, "x", parent.ID)
}

func TestWalk(t *testing.T) {
	root := sampleTree()

	var visited []string
	var depths []int
	Walk(root, func(n *Node, depth int) bool {
		visited = append(visited, n.ID)
		depths = append(depths, depth)
		return true
	})

	assert.Equal(t, []string{"root", "a", "a1", "a2", "b"}, visited)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, depths)
}

func TestWalk_Stop(t *testing.T) {
	root := sampleTree()

	var visited []string
	Walk(root, func(n *Node, _ int) bool {
		visited = append(visited, n.ID)
		return n.ID != "a1"
	})

	assert.Equal(t, []string{"root", "a", "a1"}, visited)
}

func TestPathToAndDepth(t *testing.T) {
	root := sampleTree()

	assert.Equal(t, "Root > A > A2", FormatPath(PathTo(root, "a2")))
	assert.Equal(t, RootName, FormatPath(PathTo(root, "root")))
	assert.Nil(t, PathTo(root, "missing"))

	assert.Equal(t, 0, Depth(root, "root"))
	assert.Equal(t, 2, Depth(root, "a1"))
	assert.Equal(t, -1, Depth(root, "missing"))
	assert.Equal(t, 5, Count(root))
}
