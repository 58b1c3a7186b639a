package document

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownExporter(t *testing.T) {
	var out bytes.Buffer
	elements := []Element{
		TextElement{Text: "Hello, World!"},
		ImageElement{Path: "image.png"},
		NewTableElement([]string{"Header1", "Header2"}, []string{"Row1Col1", "a|b"}),
	}
	require.NoError(t, Export(elements, MarkdownExporter{Out: &out}))

	expected := "Hello, World!\n" +
		"![](image.png)\n" +
		"| Header1 | Header2 |\n" +
		"| --- | --- |\n" +
		"| Row1Col1 | a\\|b |\n"
	assert.Equal(t, expected, out.String())
}
