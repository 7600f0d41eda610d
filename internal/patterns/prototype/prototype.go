// Package prototype demonstrates the Prototype pattern: new documents are
// produced by cloning an existing one and changing only what differs.
package prototype

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Prototype is implemented by values that can copy themselves.
type Prototype[T any] interface {
	Clone() T
}

// Document is the prototype. Every document, cloned or not, has its own ID.
type Document struct {
	ID      uuid.UUID
	Title   string
	Content string
	Footer  string
}

func NewDocument(title, content, footer string) *Document {
	return &Document{ID: uuid.New(), Title: title, Content: content, Footer: footer}
}

// Clone copies every field into a new document with a fresh ID.
func (d *Document) Clone() *Document {
	clone := *d
	clone.ID = uuid.New()
	return &clone
}

// Display writes the title, content and footer, one per line.
func (d *Document) Display(w io.Writer) {
	fmt.Fprintf(w, "Title: %s\n", d.Title)
	fmt.Fprintf(w, "Content: %s\n", d.Content)
	fmt.Fprintf(w, "Footer: %s\n", d.Footer)
}

var _ Prototype[*Document] = (*Document)(nil)

// Demo prints an original document and a modified clone of it.
func Demo(w io.Writer) error {
	original := NewDocument("Prototype Pattern", "This is a document about the Prototype Pattern.", "Confidential")

	fmt.Fprintln(w, "Original Document:")
	original.Display(w)
	fmt.Fprintln(w)

	cloned := original.Clone()
	cloned.Title = "Prototype Pattern - Cloned Version"
	cloned.Footer = "Public"

	fmt.Fprintln(w, "Cloned Document:")
	cloned.Display(w)
	return nil
}
