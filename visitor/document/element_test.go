package document

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingVisitor struct {
	calls []string
	err   error
}

func (v *recordingVisitor) VisitText(element TextElement) error {
	v.calls = append(v.calls, "text:"+element.Text)
	return v.err
}

func (v *recordingVisitor) VisitImage(element ImageElement) error {
	v.calls = append(v.calls, "image:"+element.Path)
	return v.err
}

func (v *recordingVisitor) VisitTable(element TableElement) error {
	v.calls = append(v.calls, "table")
	return v.err
}

func TestAccept_Dispatch(t *testing.T) {
	tests := []struct {
		element  Element
		expected []string
	}{
		{element: TextElement{Text: "a"}, expected: []string{"text:a"}},
		{element: ImageElement{Path: "b.png"}, expected: []string{"image:b.png"}},
		{element: NewTableElement([]string{"c"}), expected: []string{"table"}},
	}
	for _, test := range tests {
		visitor := &recordingVisitor{}
		require.NoError(t, test.element.Accept(visitor))
		if diff := cmp.Diff(test.expected, visitor.calls); diff != "" {
			t.Errorf("%T dispatched wrongly (-want +got):\n%s", test.element, diff)
		}
	}
}

func TestExport_Order(t *testing.T) {
	visitor := &recordingVisitor{}
	elements := []Element{
		ImageElement{Path: "1.png"},
		TextElement{Text: "2"},
		NewTableElement(),
		TextElement{Text: "4"},
	}
	require.NoError(t, Export(elements, visitor))
	expected := []string{"image:1.png", "text:2", "table", "text:4"}
	if diff := cmp.Diff(expected, visitor.calls); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestExport_StopsAtFirstError(t *testing.T) {
	failure := errors.New("write failed")
	visitor := &recordingVisitor{err: failure}
	err := Export([]Element{TextElement{Text: "x"}, TextElement{Text: "y"}}, visitor)
	assert.Equal(t, failure, err)
	assert.Equal(t, []string{"text:x"}, visitor.calls)
}

func TestNewTableElement_Copies(t *testing.T) {
	row := []string{"Header1", "Header2"}
	table := NewTableElement(row)
	row[0] = "changed"
	assert.Equal(t, [][]string{{"Header1", "Header2"}}, table.Rows)
}
