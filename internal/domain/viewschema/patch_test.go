package viewschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseDoc() Document {
	return Document{Root: &Node{
		Key:  "form",
		Kind: "form",
		Children: []*Node{
			{Key: "first", Kind: "page"},
			{Key: "second", Kind: "page", Children: []*Node{
				{Key: "inner", Kind: "field"},
			}},
		},
	}}
}

func childKeys(n *Node) []string {
	keys := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		keys = append(keys, child.Key)
	}
	return keys
}

func TestApplyInsertBefore(t *testing.T) {
	doc, err := Apply(baseDoc(), []Patch{
		{Op: OpInsertBefore, Anchor: "second", Node: &Node{Key: "between", Kind: "page"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "between", "second"}, childKeys(doc.Root))
}

func TestApplyInsertAfter(t *testing.T) {
	doc, err := Apply(baseDoc(), []Patch{
		{Op: OpInsertAfter, Anchor: "first", Node: &Node{Key: "between", Kind: "page"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "between", "second"}, childKeys(doc.Root))
}

func TestApplyReplace(t *testing.T) {
	doc, err := Apply(baseDoc(), []Patch{
		{Op: OpReplace, Anchor: "second", Node: &Node{Key: "replacement", Kind: "page"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "replacement"}, childKeys(doc.Root))
	assert.Nil(t, doc.Find("inner"))
}

func TestApplyAppendInside(t *testing.T) {
	doc, err := Apply(baseDoc(), []Patch{
		{Op: OpAppendInside, Anchor: "second", Node: &Node{Key: "appended", Kind: "field"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"inner", "appended"}, childKeys(doc.Find("second")))
}

func TestApplyOrderMatters(t *testing.T) {
	// The second patch anchors on the node the first patch inserted.
	doc, err := Apply(baseDoc(), []Patch{
		{Op: OpInsertAfter, Anchor: "first", Node: &Node{Key: "a", Kind: "page"}},
		{Op: OpInsertAfter, Anchor: "a", Node: &Node{Key: "b", Kind: "page"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "a", "b", "second"}, childKeys(doc.Root))

	// Reversed, the anchor does not exist yet.
	_, err = Apply(baseDoc(), []Patch{
		{Op: OpInsertAfter, Anchor: "a", Node: &Node{Key: "b", Kind: "page"}},
		{Op: OpInsertAfter, Anchor: "first", Node: &Node{Key: "a", Kind: "page"}},
	})
	assert.Error(t, err)
}

func TestApplyMissingAnchor(t *testing.T) {
	_, err := Apply(baseDoc(), []Patch{
		{Op: OpInsertBefore, Anchor: "nope", Node: &Node{Key: "x", Kind: "page"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestApplyDuplicateKeyRejected(t *testing.T) {
	_, err := Apply(baseDoc(), []Patch{
		{Op: OpInsertAfter, Anchor: "first", Node: &Node{Key: "second", Kind: "page"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestApplyDoesNotMutateBase(t *testing.T) {
	base := baseDoc()
	_, err := Apply(base, []Patch{
		{Op: OpAppendInside, Anchor: "second", Node: &Node{Key: "appended", Kind: "field"}},
	})
	require.NoError(t, err)
	assert.Nil(t, base.Find("appended"))
}

func TestValidateEmptyKey(t *testing.T) {
	doc := Document{Root: &Node{Key: "form", Children: []*Node{{Kind: "page"}}}}
	assert.Error(t, doc.Validate())
}

func TestPartnerForm(t *testing.T) {
	doc, err := PartnerForm()
	require.NoError(t, err)

	// Profiling page sits directly before the notes page.
	keys := childKeys(doc.Root)
	assert.Equal(t, []string{"partner_general", "partner_categories_page", "partner_profiling", "partner_notes"}, keys)
	require.NotNil(t, doc.Find("partner_answers"))
}

func TestSegmentationForm(t *testing.T) {
	doc, err := SegmentationForm()
	require.NoError(t, err)

	// Sales page replaced by the answer-rule page.
	assert.Nil(t, doc.Find("segmentation_sales_rules"))
	require.NotNil(t, doc.Find("segmentation_profiling_rules"))
	assert.NotNil(t, doc.Find("segmentation_answers_yes"))
	assert.NotNil(t, doc.Find("segmentation_answers_no"))

	// Run button appended inside the definition page.
	definition := doc.Find("segmentation_definition")
	require.NotNil(t, definition)
	assert.Equal(t, "segmentation_run", definition.Children[len(definition.Children)-1].Key)
}
