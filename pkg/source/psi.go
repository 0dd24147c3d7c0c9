package source

import "strings"

// PsiNode is a node of the full-fidelity syntax tree.  Leaves carry text;
// inner nodes derive their text from their children.
type PsiNode struct {
	Type     string
	Offset   int
	Leaf     string
	Children []*PsiNode
}

// NewPsiLeaf constructs a leaf node.
func NewPsiLeaf(typ, text string) *PsiNode {
	return &PsiNode{Type: typ, Leaf: text}
}

// NewPsiNode constructs an inner node and assigns offsets to the subtree,
// starting at zero.
func NewPsiNode(typ string, children ...*PsiNode) *PsiNode {
	n := &PsiNode{Type: typ, Children: children}
	n.layout(0)
	return n
}

func (n *PsiNode) layout(offset int) int {
	n.Offset = offset
	if len(n.Children) == 0 {
		return offset + len(n.Leaf)
	}
	for _, child := range n.Children {
		offset = child.layout(offset)
	}
	return offset
}

// Text returns the source text covered by the node.
func (n *PsiNode) Text() string {
	if len(n.Children) == 0 {
		return n.Leaf
	}
	var buf strings.Builder
	for _, child := range n.Children {
		buf.WriteString(child.Text())
	}
	return buf.String()
}

// Child returns the i-th child, or false if out of range.
func (n *PsiNode) Child(i int) (*PsiNode, bool) {
	if i < 0 || i >= len(n.Children) {
		return nil, false
	}
	return n.Children[i], true
}

// PsiElement is an Element backed by a PSI node.
type PsiElement struct {
	Psi *PsiNode
}

// StartOffset implements part of the Element interface.
func (e *PsiElement) StartOffset() int {
	return e.Psi.Offset
}

// EndOffset implements part of the Element interface.
func (e *PsiElement) EndOffset() int {
	return e.Psi.Offset + len(e.Psi.Text())
}

// Kind implements part of the Element interface.
func (e *PsiElement) Kind() Kind {
	return RealKind
}
