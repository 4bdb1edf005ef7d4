package browser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected []Attribute
	}{
		{
			name: "ordered pairs",
			input: []interface{}{
				[]interface{}{"id", "main"},
				[]interface{}{"class", "container wide"},
			},
			expected: []Attribute{
				{Name: "id", Value: "main"},
				{Name: "class", Value: "container wide"},
			},
		},
		{
			name:     "empty list",
			input:    []interface{}{},
			expected: nil,
		},
		{
			name:     "not a list",
			input:    "junk",
			expected: nil,
		},
		{
			name: "malformed pairs are skipped",
			input: []interface{}{
				[]interface{}{"id"},
				[]interface{}{"class", "x"},
				[]interface{}{1, 2},
			},
			expected: []Attribute{{Name: "class", Value: "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseAttributes(tt.input))
		})
	}
}

func TestIsFrameTag(t *testing.T) {
	assert.True(t, isFrameTag("iframe"))
	assert.True(t, isFrameTag("frame"))
	assert.False(t, isFrameTag("div"))
	assert.False(t, isFrameTag("frameset"))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 80))

	long := strings.Repeat("x", 100)
	truncated := truncateText(long, 80)
	assert.Len(t, truncated, 80)
	assert.True(t, strings.HasSuffix(truncated, "..."))

	// Rune-safe: multibyte text is cut on rune boundaries.
	unicodeText := strings.Repeat("日", 90)
	truncated = truncateText(unicodeText, 80)
	assert.Equal(t, strings.Repeat("日", 77)+"...", truncated)
}

func TestDomNode_NodeCount(t *testing.T) {
	var nilNode *DomNode
	assert.Equal(t, 0, nilNode.NodeCount())

	leaf := &DomNode{Tag: "span", Depth: 2}
	assert.Equal(t, 1, leaf.NodeCount())

	tree := &DomNode{
		Tag: "body",
		Children: []*DomNode{
			{Tag: "div", Depth: 1, Children: []*DomNode{leaf, {Tag: "p", Depth: 2}}},
			{Tag: "footer", Depth: 1},
		},
	}
	assert.Equal(t, 5, tree.NodeCount())
}

func TestExplorePage_RejectsNegativeDepth(t *testing.T) {
	_, err := ExplorePage(nil, "body", -1)
	require.Error(t, err)

	typed := Classify(err)
	assert.Equal(t, KindValidation, typed.Kind)
}
