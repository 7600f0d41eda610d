package memento

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextEditor_Type(t *testing.T) {
	e := &TextEditor{}
	e.Type("Hello")
	assert.Equal(t, "Hello", e.Content())
	e.Type("world!")
	assert.Equal(t, "Hello world!", e.Content())
}

// TestUndoSequence verifies that successive undos walk back through the
// saved snapshots, newest first.
func TestUndoSequence(t *testing.T) {
	e := &TextEditor{}
	h := &History{}

	e.Type("Hello")
	h.SaveState(e.Save())
	e.Type("world!")
	h.SaveState(e.Save())
	e.Type("This is a text editor.")
	require.Equal(t, "Hello world! This is a text editor.", e.Content())

	m, ok := h.Undo()
	require.True(t, ok)
	e.Restore(m)
	assert.Equal(t, "Hello world!", e.Content())

	m, ok = h.Undo()
	require.True(t, ok)
	e.Restore(m)
	assert.Equal(t, "Hello", e.Content())

	m, ok = h.Undo()
	assert.False(t, ok)
	assert.Nil(t, m)
	assert.Equal(t, "Hello", e.Content(), "failed undo leaves content untouched")
}

func TestMemento_IsASnapshot(t *testing.T) {
	e := &TextEditor{}
	e.Type("draft")
	m := e.Save()
	e.Type("more")

	assert.Equal(t, "draft", m.Content())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	want := "Current Content: Hello world! This is a text editor.\n" +
		"After Undo: Hello world!\n" +
		"After Another Undo: Hello\n"
	assert.Equal(t, want, buf.String())
}
