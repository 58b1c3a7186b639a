package document

import "golang.org/x/exp/slices"

// Element is a part of a document that can be rendered by a Visitor.
type Element interface {
	// Accept calls the visitor method matching the element's own type.
	Accept(visitor Visitor) error
}

var (
	_ Element = TextElement{}
	_ Element = ImageElement{}
	_ Element = TableElement{}
)

// TextElement is a paragraph of text.
type TextElement struct {
	Text string
}

// Accept visitor.
func (e TextElement) Accept(visitor Visitor) error {
	return visitor.VisitText(e)
}

// ImageElement references an image by path.
type ImageElement struct {
	Path string
}

// Accept visitor.
func (e ImageElement) Accept(visitor Visitor) error {
	return visitor.VisitImage(e)
}

// TableElement is a grid of cells, row by row.
type TableElement struct {
	Rows [][]string
}

// NewTableElement copies rows so later changes to them do not leak into the table.
func NewTableElement(rows ...[]string) TableElement {
	copied := make([][]string, 0, len(rows))
	for _, row := range rows {
		copied = append(copied, slices.Clone(row))
	}
	return TableElement{Rows: copied}
}

// Accept visitor.
func (e TableElement) Accept(visitor Visitor) error {
	return visitor.VisitTable(e)
}
