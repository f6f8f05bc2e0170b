package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugDecodesBothShapes(t *testing.T) {
	var fromStore Slug
	require.NoError(t, json.Unmarshal([]byte(`{"current":"bridge-retrofit"}`), &fromStore))
	assert.Equal(t, "bridge-retrofit", fromStore.Current)

	var fromFallback Slug
	require.NoError(t, json.Unmarshal([]byte(`"bridge-retrofit"`), &fromFallback))
	assert.Equal(t, "bridge-retrofit", fromFallback.Current)
}

func TestImageDecodesBothShapes(t *testing.T) {
	var fromStore Image
	require.NoError(t, json.Unmarshal([]byte(`{"asset":{"_ref":"image-abc-800x600-jpg","url":"https://cdn.example.com/a.jpg"}}`), &fromStore))
	assert.Equal(t, "image-abc-800x600-jpg", fromStore.Asset.Ref)
	assert.Equal(t, "https://cdn.example.com/a.jpg", fromStore.URL())

	var direct Image
	require.NoError(t, json.Unmarshal([]byte(`"/static/img/x.jpg"`), &direct))
	assert.Equal(t, "/static/img/x.jpg", direct.URL())
	assert.False(t, direct.IsZero())

	var empty Image
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.True(t, empty.IsZero())
	assert.Empty(t, empty.URL())
}

func TestParagraphsFlattensBlocks(t *testing.T) {
	raw := `[
		{"_type":"block","children":[{"text":"First "},{"text":"paragraph."}]},
		{"_type":"image","children":[]},
		{"_type":"block","children":[{"text":"  "}]},
		{"_type":"block","children":[{"text":"Second."}]}
	]`
	var blocks []RichTextBlock
	require.NoError(t, json.Unmarshal([]byte(raw), &blocks))

	assert.Equal(t, []string{"First paragraph.", "Second."}, Paragraphs(blocks))
}

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "GIS & Spatial Intelligence", CategoryTitle(CategoryGIS))
	assert.Equal(t, "Monitoring & Evaluation", CategoryTitle(CategoryMAndE))

	// Unknown values degrade to a readable title instead of breaking pages.
	assert.Equal(t, "Urban Farming", CategoryTitle("urban-farming"))

	assert.True(t, IsServiceCategory("construction"))
	assert.False(t, IsServiceCategory("basket-weaving"))
}
