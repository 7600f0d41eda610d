// Package composite demonstrates the Composite pattern: files and folders
// share one Component interface, so a folder tree is printed with a
// single call on its root.
package composite

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrLeafAdd is returned when a child is added to a file.
	ErrLeafAdd = errors.New("cannot add to a file")

	// ErrLeafRemove is returned when a child is removed from a file.
	ErrLeafRemove = errors.New("cannot remove from a file")
)

// Component is implemented by both leaves and containers.
type Component interface {
	ShowDetails(w io.Writer)
	Add(c Component) error
	Remove(c Component) error
}

// File is a leaf.
type File struct {
	Name string
}

func NewFile(name string) *File { return &File{Name: name} }

func (f *File) ShowDetails(w io.Writer) {
	fmt.Fprintf(w, "File: %s\n", f.Name)
}

func (f *File) Add(Component) error    { return ErrLeafAdd }
func (f *File) Remove(Component) error { return ErrLeafRemove }

// Folder holds an ordered list of children.
type Folder struct {
	Name     string
	children []Component
}

func NewFolder(name string) *Folder { return &Folder{Name: name} }

// ShowDetails prints the folder, then each child prefixed with "- ".
func (f *Folder) ShowDetails(w io.Writer) {
	fmt.Fprintf(w, "Folder: %s\n", f.Name)
	for _, child := range f.children {
		fmt.Fprint(w, "- ")
		child.ShowDetails(w)
	}
}

func (f *Folder) Add(c Component) error {
	f.children = append(f.children, c)
	return nil
}

// Remove detaches the first child identical to c. Removing a component
// that is not a child is a no-op.
func (f *Folder) Remove(c Component) error {
	for i, child := range f.children {
		if child == c {
			f.children = append(f.children[:i], f.children[i+1:]...)
			return nil
		}
	}
	return nil
}

// Children returns a copy of the folder's children.
func (f *Folder) Children() []Component {
	return append([]Component(nil), f.children...)
}

// Demo builds RootFolder/{Folder1/{File1,File2}, Folder2/{File3}} and prints it.
func Demo(w io.Writer) error {
	folder1 := NewFolder("Folder1")
	folder2 := NewFolder("Folder2")
	root := NewFolder("RootFolder")

	for _, step := range []struct {
		parent Component
		child  Component
	}{
		{folder1, NewFile("File1.txt")},
		{folder1, NewFile("File2.txt")},
		{folder2, NewFile("File3.txt")},
		{root, folder1},
		{root, folder2},
	} {
		if err := step.parent.Add(step.child); err != nil {
			return err
		}
	}

	root.ShowDetails(w)
	return nil
}
