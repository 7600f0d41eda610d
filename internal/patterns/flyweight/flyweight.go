// Package flyweight demonstrates the Flyweight pattern: trees in a forest
// share their intrinsic state (name, color, texture) through a factory,
// and only keep their coordinates themselves.
package flyweight

import (
	"fmt"
	"io"
)

// TreeType is the shared, immutable part of a tree.
type TreeType struct {
	Name    string
	Color   string
	Texture string
}

// Draw renders the tree type at the given coordinates.
func (t *TreeType) Draw(x, y int) string {
	return fmt.Sprintf("Drawing a %s tree of color %s and texture %s at (%d, %d).",
		t.Name, t.Color, t.Texture, x, y)
}

type treeKey struct {
	name, color, texture string
}

// TreeFactory hands out one TreeType per distinct (name, color, texture).
type TreeFactory struct {
	types map[treeKey]*TreeType
}

func NewTreeFactory() *TreeFactory {
	return &TreeFactory{types: make(map[treeKey]*TreeType)}
}

// TreeType returns the shared instance for the triple, creating it on first use.
func (f *TreeFactory) TreeType(name, color, texture string) *TreeType {
	key := treeKey{name: name, color: color, texture: texture}
	if t, ok := f.types[key]; ok {
		return t
	}
	t := &TreeType{Name: name, Color: color, Texture: texture}
	f.types[key] = t
	return t
}

// Len reports how many distinct tree types have been created.
func (f *TreeFactory) Len() int {
	return len(f.types)
}

// Tree is the extrinsic state: a position plus a shared type.
type Tree struct {
	X, Y int
	Type *TreeType
}

func (t Tree) Draw() string {
	return t.Type.Draw(t.X, t.Y)
}

// Forest plants trees through its factory.
type Forest struct {
	factory *TreeFactory
	trees   []Tree
}

func NewForest(factory *TreeFactory) *Forest {
	return &Forest{factory: factory}
}

func (f *Forest) PlantTree(x, y int, name, color, texture string) {
	f.trees = append(f.trees, Tree{X: x, Y: y, Type: f.factory.TreeType(name, color, texture)})
}

func (f *Forest) Trees() []Tree {
	return append([]Tree(nil), f.trees...)
}

func (f *Forest) Draw(w io.Writer) {
	for _, tree := range f.trees {
		fmt.Fprintln(w, tree.Draw())
	}
}

// Demo plants four trees, two of which share the Oak type, and draws them.
func Demo(w io.Writer) error {
	forest := NewForest(NewTreeFactory())
	forest.PlantTree(1, 1, "Oak", "Green", "Rough")
	forest.PlantTree(2, 3, "Pine", "Dark Green", "Smooth")
	forest.PlantTree(5, 2, "Oak", "Green", "Rough")
	forest.PlantTree(4, 4, "Birch", "Light Green", "Thin")
	forest.Draw(w)
	return nil
}
