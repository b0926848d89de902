package bracket

import "worldcup-stats-service/internal/resultlist"

// Highlight lists the links (by child id) and labels (by node id) to emphasise.
type Highlight struct {
	Links  []string `json:"links"`
	Labels []string `json:"labels"`
}

// Highlight works out what a hovered table row lights up. Group-stage rows
// never appear in the bracket.
func (t *Tree) Highlight(sel resultlist.Selection) Highlight {
	h := Highlight{Links: []string{}, Labels: []string{}}
	if sel.Result.IsGroupStage() {
		return h
	}

	var linkMatch, labelMatch func(*Node) bool
	switch sel.Kind {
	case resultlist.KindAggregate:
		labelMatch = func(n *Node) bool { return n.Team == sel.Team }
		linkMatch = func(n *Node) bool {
			return n.Parent != nil && n.Team == sel.Team && n.Parent.Team == sel.Team
		}
	case resultlist.KindGame:
		labelMatch = func(n *Node) bool {
			return (n.Team == sel.Team && n.Opponent == sel.Opponent) ||
				(n.Team == sel.Opponent && n.Opponent == sel.Team)
		}
		linkMatch = func(n *Node) bool { return n.Parent != nil && labelMatch(n) }
	default:
		return h
	}

	for _, n := range t.Nodes {
		if linkMatch(n) {
			h.Links = append(h.Links, n.ID)
		}
		if labelMatch(n) {
			h.Labels = append(h.Labels, n.ID)
		}
	}
	return h
}
