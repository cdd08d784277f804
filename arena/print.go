package arena

import (
	tp "github.com/xlab/treeprint"
)

// Sprint renders the subtree rooted at from for debugging. Each node is
// labelled by the given function. Siblings print newest first, matching
// traversal order.
func (t *Tree[T]) Sprint(from NodeID, label func(NodeID, *T) string) string {
	p := tp.New()
	t.sprint(p, from, label)
	return p.String()
}

func (t *Tree[T]) sprint(p tp.Tree, id NodeID, label func(NodeID, *T) string) {
	if t.nodes[id].lastChild == None {
		p.AddNode(label(id, &t.nodes[id].data))
		return
	}
	branch := p.AddBranch(label(id, &t.nodes[id].data))
	for c := t.nodes[id].lastChild; c != None; c = t.nodes[c].prevSibling {
		t.sprint(branch, c, label)
	}
}
