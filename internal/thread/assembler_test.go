package thread

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iskandar/reply-notifier/internal/model"
)

var testItem = uuid.New()

func makeComment(t *testing.T, parent *uuid.UUID, offset time.Duration) model.Comment {
	t.Helper()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return model.Comment{
		ID:            uuid.New(),
		ContentItemID: testItem,
		ParentID:      parent,
		AuthorID:      uuid.New(),
		AuthorEmail:   "author@example.com",
		Body:          "body",
		CreatedAt:     base.Add(offset),
	}
}

func TestAssemble_BuildsForest(t *testing.T) {
	c1 := makeComment(t, nil, 0)
	c2 := makeComment(t, &c1.ID, time.Minute)
	c3 := makeComment(t, &c1.ID, 2*time.Minute)
	c4 := makeComment(t, &c2.ID, 3*time.Minute)
	c5 := makeComment(t, nil, 4*time.Minute)

	forest, err := Assemble([]model.Comment{c1, c2, c3, c4, c5})
	require.NoError(t, err)
	require.Len(t, forest, 2)

	assert.Equal(t, c1.ID, forest[0].Comment.ID)
	assert.Equal(t, c5.ID, forest[1].Comment.ID)
	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, c2.ID, forest[0].Children[0].Comment.ID)
	assert.Equal(t, c3.ID, forest[0].Children[1].Comment.ID)
	require.Len(t, forest[0].Children[0].Children, 1)
	assert.Equal(t, c4.ID, forest[0].Children[0].Children[0].Comment.ID)
}

func TestAssemble_DeterministicRegardlessOfInputOrder(t *testing.T) {
	c1 := makeComment(t, nil, 0)
	c2 := makeComment(t, &c1.ID, time.Minute)
	c3 := makeComment(t, &c2.ID, 2*time.Minute)

	a, err := Assemble([]model.Comment{c1, c2, c3})
	require.NoError(t, err)
	b, err := Assemble([]model.Comment{c3, c1, c2})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestAssemble_RejectsDanglingParent(t *testing.T) {
	ghost := uuid.New()
	orphan := makeComment(t, &ghost, 0)

	_, err := Assemble([]model.Comment{orphan})
	assert.ErrorIs(t, err, ErrDanglingParent)
}

func TestAssemble_RejectsCrossItemParent(t *testing.T) {
	c1 := makeComment(t, nil, 0)
	stray := makeComment(t, &c1.ID, time.Minute)
	stray.ContentItemID = uuid.New()

	_, err := Assemble([]model.Comment{c1, stray})
	assert.ErrorIs(t, err, ErrCrossItemParent)
}

// Every input comment must appear exactly once in a depth-first walk of the
// assembled forest, flattened or not.
func TestAssemble_FlattenRecoversAllComments(t *testing.T) {
	c1 := makeComment(t, nil, 0)
	c2 := makeComment(t, &c1.ID, time.Minute)
	c3 := makeComment(t, &c2.ID, 2*time.Minute)
	c4 := makeComment(t, &c3.ID, 3*time.Minute)
	c5 := makeComment(t, &c4.ID, 4*time.Minute)
	input := []model.Comment{c1, c2, c3, c4, c5}

	forest, err := Assemble(input)
	require.NoError(t, err)

	for _, f := range [][]*model.CommentNode{forest, Flatten(forest, 3)} {
		seen := map[uuid.UUID]int{}
		var walk func(nodes []*model.CommentNode)
		walk = func(nodes []*model.CommentNode) {
			for _, n := range nodes {
				seen[n.Comment.ID]++
				walk(n.Children)
			}
		}
		walk(f)

		require.Len(t, seen, len(input))
		for _, c := range input {
			assert.Equal(t, 1, seen[c.ID])
		}
	}
}

func TestFlatten_CapsDepthAndKeepsParentID(t *testing.T) {
	c1 := makeComment(t, nil, 0)
	c2 := makeComment(t, &c1.ID, time.Minute)
	c3 := makeComment(t, &c2.ID, 2*time.Minute)
	c4 := makeComment(t, &c3.ID, 3*time.Minute)
	c5 := makeComment(t, &c4.ID, 4*time.Minute)

	forest, err := Assemble([]model.Comment{c1, c2, c3, c4, c5})
	require.NoError(t, err)

	flat := Flatten(forest, 3)
	require.Len(t, flat, 1)

	level3 := flat[0].Children[0].Children[0]
	assert.Equal(t, c3.ID, level3.Comment.ID)

	// c4 and c5 sat at depths 4 and 5; both end up directly under c3.
	require.Len(t, level3.Children, 2)
	assert.Equal(t, c4.ID, level3.Children[0].Comment.ID)
	assert.Equal(t, c5.ID, level3.Children[1].Comment.ID)
	assert.Empty(t, level3.Children[0].Children)

	// Stored parent references are untouched by flattening.
	assert.Equal(t, c4.ID, *level3.Children[1].Comment.ParentID)
}

func TestFlatten_DisabledCapReturnsForestAsIs(t *testing.T) {
	c1 := makeComment(t, nil, 0)
	forest, err := Assemble([]model.Comment{c1})
	require.NoError(t, err)

	assert.Equal(t, forest, Flatten(forest, 0))
}
