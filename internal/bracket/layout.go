package bracket

// Link connects a child game to the game it fed into.
type Link struct {
	ChildID  string  `json:"childId"`
	ParentID string  `json:"parentId"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
}

// Layout is a placed tree ready to draw.
type Layout struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Nodes  []*Node `json:"nodes"`
	Links  []Link  `json:"links"`
}

// Lay places the tree in a width x height box: depth runs left to right,
// leaves are spread evenly top to bottom and parents sit centred on their children.
func Lay(t *Tree, width, height float64) Layout {
	leaves := t.Leaves()
	step := height / float64(len(leaves))
	for i, leaf := range leaves {
		leaf.Y = (float64(i) + 0.5) * step
	}
	centre(t.Root)

	depth := t.MaxDepth()
	for _, n := range t.Nodes {
		if depth > 0 {
			n.X = float64(n.Depth) / float64(depth) * width
		}
	}

	layout := Layout{Width: width, Height: height, Nodes: t.Nodes}
	for _, n := range t.Nodes {
		if n.Parent == nil {
			continue
		}
		layout.Links = append(layout.Links, Link{
			ChildID:  n.ID,
			ParentID: n.Parent.ID,
			X1:       n.X,
			Y1:       n.Y,
			X2:       n.Parent.X,
			Y2:       n.Parent.Y,
		})
	}
	return layout
}

func centre(n *Node) float64 {
	if n.Leaf() {
		return n.Y
	}
	first := centre(n.Children[0])
	last := first
	for _, c := range n.Children[1:] {
		last = centre(c)
	}
	n.Y = (first + last) / 2
	return n.Y
}
