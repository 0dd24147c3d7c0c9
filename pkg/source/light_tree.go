package source

// LightNode is one entry of a flattened LightTree.  Nodes are stored in
// pre-order; Parent is the index of the parent node, or -1 for the root.
type LightNode struct {
	Type   string
	Start  int
	End    int
	Parent int
}

// LightTree is a memory-light syntax tree: a flat node array over a shared
// text buffer.
type LightTree struct {
	Text  string
	Nodes []LightNode
}

// NewLightTree flattens a PSI tree into a LightTree.
func NewLightTree(root *PsiNode) *LightTree {
	t := &LightTree{Text: root.Text()}
	t.flatten(root, -1, root.Offset)
	return t
}

func (t *LightTree) flatten(n *PsiNode, parent, base int) {
	index := len(t.Nodes)
	start := n.Offset - base
	t.Nodes = append(t.Nodes, LightNode{
		Type:   n.Type,
		Start:  start,
		End:    start + len(n.Text()),
		Parent: parent,
	})
	for _, child := range n.Children {
		t.flatten(child, index, base)
	}
}

// Children returns the indices of the direct children of node i, in order.
func (t *LightTree) Children(i int) []int {
	var children []int
	for j := i + 1; j < len(t.Nodes); j++ {
		if t.Nodes[j].Parent == i {
			children = append(children, j)
		}
	}
	return children
}

// NodeText returns the text covered by node i.
func (t *LightTree) NodeText(i int) (string, bool) {
	if i < 0 || i >= len(t.Nodes) {
		return "", false
	}
	n := t.Nodes[i]
	if n.Start < 0 || n.End > len(t.Text) || n.Start > n.End {
		return "", false
	}
	return t.Text[n.Start:n.End], true
}

// LightElement is an Element backed by a node of a LightTree.
type LightElement struct {
	Tree  *LightTree
	Index int
}

// StartOffset implements part of the Element interface.
func (e *LightElement) StartOffset() int {
	return e.Tree.Nodes[e.Index].Start
}

// EndOffset implements part of the Element interface.
func (e *LightElement) EndOffset() int {
	return e.Tree.Nodes[e.Index].End
}

// Kind implements part of the Element interface.
func (e *LightElement) Kind() Kind {
	return RealKind
}
