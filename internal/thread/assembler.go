// Package thread assembles a flat comment collection into a reply forest and
// applies the presentation depth cap.
package thread

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/iskandar/reply-notifier/internal/model"
)

var (
	// ErrDanglingParent is returned when a comment references a parent that
	// is not present in the input set. Orphaned data is rejected, not
	// silently promoted to top level.
	ErrDanglingParent = errors.New("comment references a parent outside the input set")

	// ErrCrossItemParent is returned when a comment's parent belongs to a
	// different content item.
	ErrCrossItemParent = errors.New("comment references a parent on another content item")
)

// Assemble builds a forest from all comments of one content item. Input order
// does not matter: comments are sorted by CreatedAt ascending with ID as the
// tie-breaker, so the same set always yields an identical forest.
func Assemble(comments []model.Comment) ([]*model.CommentNode, error) {
	sorted := make([]model.Comment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	nodes := make(map[uuid.UUID]*model.CommentNode, len(sorted))
	for i := range sorted {
		nodes[sorted[i].ID] = &model.CommentNode{Comment: sorted[i]}
	}

	var forest []*model.CommentNode
	for i := range sorted {
		c := sorted[i]
		node := nodes[c.ID]

		if c.ParentID == nil {
			forest = append(forest, node)
			continue
		}

		parent, ok := nodes[*c.ParentID]
		if !ok {
			return nil, fmt.Errorf("comment %s: %w", c.ID, ErrDanglingParent)
		}
		if parent.Comment.ContentItemID != c.ContentItemID {
			return nil, fmt.Errorf("comment %s: %w", c.ID, ErrCrossItemParent)
		}

		parent.Children = append(parent.Children, node)
	}

	return forest, nil
}

// Flatten caps the rendered nesting depth. Roots sit at depth 1; any node
// deeper than maxDepth is re-attached, in traversal order, under its ancestor
// at maxDepth. The stored ParentID of every comment is left untouched, so the
// original forest can always be re-assembled. maxDepth < 1 disables the cap.
func Flatten(forest []*model.CommentNode, maxDepth int) []*model.CommentNode {
	if maxDepth < 1 {
		return forest
	}

	out := make([]*model.CommentNode, 0, len(forest))
	for _, root := range forest {
		out = append(out, flattenNode(root, 1, maxDepth))
	}
	return out
}

func flattenNode(node *model.CommentNode, depth, maxDepth int) *model.CommentNode {
	clone := &model.CommentNode{Comment: node.Comment}

	if depth < maxDepth {
		for _, child := range node.Children {
			clone.Children = append(clone.Children, flattenNode(child, depth+1, maxDepth))
		}
		return clone
	}

	// At the cap: every descendant becomes a direct child, in DFS order.
	for _, child := range node.Children {
		collectDescendants(child, clone)
	}
	return clone
}

func collectDescendants(node *model.CommentNode, into *model.CommentNode) {
	into.Children = append(into.Children, &model.CommentNode{Comment: node.Comment})
	for _, child := range node.Children {
		collectDescendants(child, into)
	}
}
