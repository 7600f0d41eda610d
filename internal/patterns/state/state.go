// Package state demonstrates the State pattern: a document's reaction to
// edit, publish and reject depends on whether it is a draft, under review,
// or published, and each state decides the next one.
//
//	Draft --publish--> Review --publish--> Published
//	  ^                  |
//	  +------reject------+
package state

import (
	"fmt"
	"io"
)

// State handles the document operations for one workflow stage.
type State interface {
	Name() string
	Edit(d *Document)
	Publish(d *Document)
	Reject(d *Document)
}

// Document delegates every operation to its current state.
type Document struct {
	out   io.Writer
	state State
}

// NewDocument creates a document in the given initial state.
func NewDocument(out io.Writer, initial State) *Document {
	return &Document{out: out, state: initial}
}

func (d *Document) SetState(s State) { d.state = s }
func (d *Document) State() State     { return d.state }

func (d *Document) Edit()    { d.state.Edit(d) }
func (d *Document) Publish() { d.state.Publish(d) }
func (d *Document) Reject()  { d.state.Reject(d) }

func (d *Document) say(msg string) {
	fmt.Fprintln(d.out, msg)
}

type DraftState struct{}

func (DraftState) Name() string { return "draft" }

func (DraftState) Edit(d *Document) { d.say("Document is being edited in Draft mode.") }

func (DraftState) Publish(d *Document) {
	d.say("Document submitted for review.")
	d.SetState(ReviewState{})
}

func (DraftState) Reject(d *Document) { d.say("Document is already in Draft. Cannot reject.") }

type ReviewState struct{}

func (ReviewState) Name() string { return "review" }

func (ReviewState) Edit(d *Document) { d.say("Cannot edit document while under review.") }

func (ReviewState) Publish(d *Document) {
	d.say("Document is published.")
	d.SetState(PublishedState{})
}

func (ReviewState) Reject(d *Document) {
	d.say("Document rejected. Returning to Draft.")
	d.SetState(DraftState{})
}

// PublishedState is terminal.
type PublishedState struct{}

func (PublishedState) Name() string { return "published" }

func (PublishedState) Edit(d *Document)    { d.say("Cannot edit document after it is published.") }
func (PublishedState) Publish(d *Document) { d.say("Document is already published.") }
func (PublishedState) Reject(d *Document)  { d.say("Cannot reject document after it is published.") }

// Demo walks a draft through review to publication, editing at each stage.
func Demo(w io.Writer) error {
	doc := NewDocument(w, DraftState{})
	doc.Edit()
	doc.Publish()
	doc.Edit()
	doc.Publish()
	doc.Edit()
	return nil
}
