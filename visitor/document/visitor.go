package document

// TextVisitor visits TextElement.
type TextVisitor interface {
	VisitText(element TextElement) error
}

// ImageVisitor visits ImageElement.
type ImageVisitor interface {
	VisitImage(element ImageElement) error
}

// TableVisitor visits TableElement.
type TableVisitor interface {
	VisitTable(element TableElement) error
}

// Visitor extends all element visitor interfaces, one method per element type.
type Visitor interface {
	TextVisitor
	ImageVisitor
	TableVisitor
}

// Export visits elements in order and stops at the first error.
func Export(elements []Element, visitor Visitor) error {
	for _, element := range elements {
		if err := element.Accept(visitor); err != nil {
			return err
		}
	}
	return nil
}
