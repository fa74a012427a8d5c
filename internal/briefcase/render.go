package briefcase

import "tenderdesk/internal/domain/models"

// ExpansionSet is the set of folder IDs currently expanded.
type ExpansionSet map[int64]struct{}

// NewExpansionSet returns an empty set (everything collapsed).
func NewExpansionSet() ExpansionSet {
	return make(ExpansionSet)
}

// Toggle flips membership for one folder ID.
func (s ExpansionSet) Toggle(id int64) {
	if _, ok := s[id]; ok {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// Expanded reports whether the folder is expanded.
func (s ExpansionSet) Expanded(id int64) bool {
	_, ok := s[id]
	return ok
}

// Row is one flattened entry of the rendered tree; Depth drives
// indentation.
type Row struct {
	Node  *models.FolderNode
	Depth int
}

// RenderTree flattens the forest depth-first in pre-order. A node's
// subfolders are visited only when its ID is in the expanded set; depth
// is unbounded and the traversal recurses structurally.
func RenderTree(roots []*models.FolderNode, expanded ExpansionSet) []Row {
	rows := make([]Row, 0, len(roots))
	var walk func(nodes []*models.FolderNode, depth int)
	walk = func(nodes []*models.FolderNode, depth int) {
		for _, node := range nodes {
			rows = append(rows, Row{Node: node, Depth: depth})
			if expanded.Expanded(node.ID) {
				walk(node.Subfolders, depth+1)
			}
		}
	}
	walk(roots, 0)
	return rows
}
