// Package chain demonstrates the Chain of Responsibility pattern: a support
// request travels along escalating support levels until one of them
// handles it, or it falls off the end of the chain.
package chain

import (
	"fmt"
	"io"
)

// Unresolved is the answer given when no handler in the chain accepts an issue.
const Unresolved = "Issue could not be resolved."

// Handler is one link of the chain.
type Handler interface {
	// SetNext appends h after this handler and returns h, so chains can
	// be wired fluently: a.SetNext(b).SetNext(c).
	SetNext(h Handler) Handler
	Handle(issue string) string
}

// link carries the successor and the fall-through behavior shared by all handlers.
type link struct {
	next Handler
}

func (l *link) SetNext(h Handler) Handler {
	l.next = h
	return h
}

func (l *link) forward(issue string) string {
	if l.next != nil {
		return l.next.Handle(issue)
	}
	return Unresolved
}

// SupportHandler resolves a fixed set of issues at one support level.
type SupportHandler struct {
	link
	level  int
	issues map[string]bool
}

// NewSupportHandler creates a handler for the given level that accepts issues.
func NewSupportHandler(level int, issues ...string) *SupportHandler {
	h := &SupportHandler{level: level, issues: make(map[string]bool, len(issues))}
	for _, issue := range issues {
		h.issues[issue] = true
	}
	return h
}

func NewLevel1() *SupportHandler {
	return NewSupportHandler(1, "password reset", "account setup")
}

func NewLevel2() *SupportHandler {
	return NewSupportHandler(2, "software installation", "configuration")
}

func NewLevel3() *SupportHandler {
	return NewSupportHandler(3, "software bug", "system outage")
}

func (h *SupportHandler) Handle(issue string) string {
	if h.issues[issue] {
		return fmt.Sprintf("Level %d Support: Issue handled at Level %d - %s", h.level, h.level, issue)
	}
	return h.forward(issue)
}

// Demo wires levels 1 → 2 → 3 and sends one issue per level plus an unknown one.
func Demo(w io.Writer) error {
	level1 := NewLevel1()
	level1.SetNext(NewLevel2()).SetNext(NewLevel3())

	for _, issue := range []string{"password reset", "software installation", "software bug", "unknown issue"} {
		fmt.Fprintln(w, level1.Handle(issue))
	}
	return nil
}
