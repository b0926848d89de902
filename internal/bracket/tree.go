// Package bracket builds the knockout tree from parent-indexed game rows, lays
// it out, and works out which parts to highlight for a table selection.
package bracket

import (
	"errors"
	"fmt"
	"strconv"
)

// NoParent marks the root entry.
const NoParent = -1

var (
	ErrNoRoot        = errors.New("bracket has no root")
	ErrMultipleRoots = errors.New("bracket has more than one root")
	ErrBadParent     = errors.New("bracket parent index out of range")
	ErrCycle         = errors.New("bracket contains a cycle")
)

// Entry is one row of the tree dataset: a team's side of a knockout game.
type Entry struct {
	Team          string `json:"team"`
	Opponent      string `json:"opponent"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	GoalsMade     int    `json:"goalsMade"`
	GoalsConceded int    `json:"goalsConceded"`
	ParentGame    int    `json:"parentGame"`
}

// Node is a placed entry in the tree.
type Node struct {
	Entry
	ID       string  `json:"id"`
	Depth    int     `json:"depth"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Parent   *Node   `json:"-"`
	Children []*Node `json:"-"`
}

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool { return len(n.Children) == 0 }

// Tree is the stratified bracket. Nodes keeps dataset order.
type Tree struct {
	Root  *Node
	Nodes []*Node
}

// NodeID is the identifier given to the entry at index.
func NodeID(e Entry, index int) string {
	return e.Team + e.Opponent + strconv.Itoa(index)
}

// Build links entries to their parents. Exactly one entry must be the root.
func Build(entries []Entry) (*Tree, error) {
	if len(entries) == 0 {
		return nil, ErrNoRoot
	}

	nodes := make([]*Node, len(entries))
	for i, e := range entries {
		nodes[i] = &Node{Entry: e, ID: NodeID(e, i)}
	}

	tree := &Tree{Nodes: nodes}
	for i, n := range nodes {
		p := n.ParentGame
		switch {
		case p == NoParent:
			if tree.Root != nil {
				return nil, fmt.Errorf("%w: %s and %s", ErrMultipleRoots, tree.Root.ID, n.ID)
			}
			tree.Root = n
		case p < 0 || p >= len(nodes) || p == i:
			return nil, fmt.Errorf("%w: entry %d points at %d", ErrBadParent, i, p)
		default:
			n.Parent = nodes[p]
			nodes[p].Children = append(nodes[p].Children, n)
		}
	}
	if tree.Root == nil {
		return nil, ErrNoRoot
	}

	visited := assignDepths(tree.Root)
	if visited != len(nodes) {
		return nil, fmt.Errorf("%w: %d of %d entries unreachable from root", ErrCycle, len(nodes)-visited, len(nodes))
	}
	return tree, nil
}

func assignDepths(root *Node) int {
	count := 0
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, c := range n.Children {
			c.Depth = n.Depth + 1
			stack = append(stack, c)
		}
	}
	return count
}

// Leaves returns the leaves in depth-first order.
func (t *Tree) Leaves() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Leaf() {
			out = append(out, n)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return out
}

// MaxDepth is the depth of the deepest node.
func (t *Tree) MaxDepth() int {
	depth := 0
	for _, n := range t.Nodes {
		depth = max(depth, n.Depth)
	}
	return depth
}
