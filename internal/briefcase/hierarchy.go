// Package briefcase holds the pure folder-hierarchy logic of the
// document briefcase: assembling a nested forest from flat folder rows
// and flattening it for rendering. It owns no storage; callers rebuild
// the hierarchy from the repository after every mutation instead of
// patching it in place.
package briefcase

import (
	"fmt"

	"tenderdesk/internal/domain/models"
)

// BuildHierarchy nests flat folder rows into a forest. Sibling order
// follows the input (append order from the repository). The flat
// collection must satisfy the forest invariants: unique IDs, every
// non-nil parentId resolving to a folder in the collection, and no
// cycles when walking parent pointers.
func BuildHierarchy(folders []models.Folder) ([]*models.FolderNode, error) {
	byID := make(map[int64]*models.FolderNode, len(folders))
	for _, f := range folders {
		if _, dup := byID[f.ID]; dup {
			return nil, fmt.Errorf("duplicate folder id %d", f.ID)
		}
		byID[f.ID] = &models.FolderNode{Folder: f, Subfolders: []*models.FolderNode{}}
	}

	for _, f := range folders {
		if f.ParentID == nil {
			continue
		}
		if _, ok := byID[*f.ParentID]; !ok {
			return nil, fmt.Errorf("folder %d references missing parent %d", f.ID, *f.ParentID)
		}
	}

	// Walking parent pointers from any node must reach a root within
	// len(folders) steps; a longer walk means a cycle.
	for _, f := range folders {
		steps := 0
		for cur := f.ParentID; cur != nil; cur = byID[*cur].ParentID {
			steps++
			if steps > len(folders) {
				return nil, fmt.Errorf("cycle detected walking parents of folder %d", f.ID)
			}
		}
	}

	roots := make([]*models.FolderNode, 0)
	for _, f := range folders {
		node := byID[f.ID]
		if f.ParentID == nil {
			roots = append(roots, node)
		} else {
			parent := byID[*f.ParentID]
			parent.Subfolders = append(parent.Subfolders, node)
		}
	}
	return roots, nil
}
