// Package templatemethod demonstrates the Template Method pattern. Process
// fixes the order of the steps; processors supply the steps that vary and
// may override the default save step.
package templatemethod

import (
	"fmt"
	"io"
)

// Steps are the operations every processor must provide.
type Steps interface {
	LoadData(w io.Writer)
	ParseData(w io.Writer)
}

// Saver is implemented by processors that replace the default save step.
type Saver interface {
	SaveData(w io.Writer)
}

// Process runs load, parse and save, in that order.
func Process(w io.Writer, s Steps) {
	s.LoadData(w)
	s.ParseData(w)
	if saver, ok := s.(Saver); ok {
		saver.SaveData(w)
		return
	}
	saveData(w)
}

func saveData(w io.Writer) {
	fmt.Fprintln(w, "Data has been saved.")
}

type XMLDataProcessor struct{}

func (XMLDataProcessor) LoadData(w io.Writer)  { fmt.Fprintln(w, "Loading XML data...") }
func (XMLDataProcessor) ParseData(w io.Writer) { fmt.Fprintln(w, "Parsing XML data...") }

type JSONDataProcessor struct{}

func (JSONDataProcessor) LoadData(w io.Writer)  { fmt.Fprintln(w, "Loading JSON data...") }
func (JSONDataProcessor) ParseData(w io.Writer) { fmt.Fprintln(w, "Parsing JSON data...") }

// Demo processes XML data, then JSON data.
func Demo(w io.Writer) error {
	Process(w, XMLDataProcessor{})
	fmt.Fprintln(w)
	Process(w, JSONDataProcessor{})
	return nil
}
