// Package memento demonstrates the Memento pattern: a text editor hands out
// opaque snapshots of its content that a history stack can later restore.
package memento

import (
	"fmt"
	"io"
)

// EditorMemento is an immutable snapshot of the editor content.
type EditorMemento struct {
	content string
}

func (m *EditorMemento) Content() string { return m.content }

type TextEditor struct {
	content string
}

// Type appends words, separated from existing content by a single space.
func (e *TextEditor) Type(words string) {
	if e.content == "" {
		e.content = words
		return
	}
	e.content += " " + words
}

func (e *TextEditor) Content() string { return e.content }

func (e *TextEditor) Save() *EditorMemento {
	return &EditorMemento{content: e.content}
}

func (e *TextEditor) Restore(m *EditorMemento) {
	e.content = m.content
}

// History is a stack of snapshots.
type History struct {
	mementos []*EditorMemento
}

func (h *History) SaveState(m *EditorMemento) {
	h.mementos = append(h.mementos, m)
}

// Undo pops the most recent snapshot. It reports false when the history is empty.
func (h *History) Undo() (*EditorMemento, bool) {
	if len(h.mementos) == 0 {
		return nil, false
	}
	last := h.mementos[len(h.mementos)-1]
	h.mementos = h.mementos[:len(h.mementos)-1]
	return last, true
}

func (h *History) Len() int { return len(h.mementos) }

// Demo types three phrases, saving after the first two, and undoes twice.
func Demo(w io.Writer) error {
	editor := &TextEditor{}
	history := &History{}

	editor.Type("Hello")
	history.SaveState(editor.Save())
	editor.Type("world!")
	history.SaveState(editor.Save())
	editor.Type("This is a text editor.")
	fmt.Fprintf(w, "Current Content: %s\n", editor.Content())

	for _, label := range []string{"After Undo", "After Another Undo"} {
		if m, ok := history.Undo(); ok {
			editor.Restore(m)
		}
		fmt.Fprintf(w, "%s: %s\n", label, editor.Content())
	}
	return nil
}
