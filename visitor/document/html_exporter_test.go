package document

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLExporter(t *testing.T) {
	tests := []struct {
		name     string
		element  Element
		expected string
	}{
		{
			name:     "text",
			element:  TextElement{Text: "Hello, World!"},
			expected: "<p>Hello, World!</p>\n",
		},
		{
			name:     "image",
			element:  ImageElement{Path: "image.png"},
			expected: "<img src=\"image.png\" />\n",
		},
		{
			name:     "table",
			element:  NewTableElement([]string{"Header1", "Header2"}, []string{"Row1Col1", "Row1Col2"}),
			expected: "<table><tr><td>Header1</td><td>Header2</td></tr><tr><td>Row1Col1</td><td>Row1Col2</td></tr></table>\n",
		},
		{
			name:     "empty table",
			element:  NewTableElement(),
			expected: "<table></table>\n",
		},
		{
			name:     "escaped text",
			element:  TextElement{Text: "a < b & c"},
			expected: "<p>a &lt; b &amp; c</p>\n",
		},
		{
			name:     "escaped path",
			element:  ImageElement{Path: `x".png`},
			expected: "<img src=\"x&#34;.png\" />\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, test.element.Accept(HTMLExporter{Out: &out}))
			assert.Equal(t, test.expected, out.String())
		})
	}
}

type countingWriter struct {
	writes int
	buf    bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.buf.Write(p)
}

func TestHTMLExporter_TableSingleWrite(t *testing.T) {
	var out countingWriter
	table := NewTableElement([]string{"a", "b"}, []string{"c", "d"}, []string{"e", "f"})
	require.NoError(t, table.Accept(HTMLExporter{Out: &out}))
	assert.Equal(t, 1, out.writes)
	assert.Equal(t, "<table><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr><tr><td>e</td><td>f</td></tr></table>\n", out.buf.String())
}
