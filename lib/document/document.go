package document

import (
	"io"
)

// Line is one physical line of text, including its terminator.
type Line string

// link is a slot index plus one, so that the zero value is the end of the
// chain.
type link int

const terminal link = 0

func linkTo(slot int) link {
	return link(slot + 1)
}

func (l link) slot() int {
	return int(l) - 1
}

type node struct {
	line Line
	next link
}

// Document is an ordered, append only sequence of lines.
//
// Nodes live in an arena and are chained by index, so the chain can never
// contain cycles or references into released memory. The zero value is an
// empty document ready to use.
type Document struct {
	nodes   []node
	head    link
	tail    link
	tracker Tracker
}

type Option func(*Document)

// WithTracker reports every acquisition and release of nodes and lines to
// tracker. Only available through New; a zero value Document has no tracker.
func WithTracker(tracker Tracker) Option {
	return func(d *Document) {
		d.tracker = tracker
	}
}

// New creates an empty document. Without options it is equivalent to the
// zero value.
func New(opts ...Option) *Document {
	result := &Document{}

	for _, opt := range opts {
		opt(result)
	}

	return result
}

// Append adds line at the tail and returns the same document.
// The document owns line from now on.
func (d *Document) Append(line Line) *Document {
	slot := len(d.nodes)
	d.nodes = append(d.nodes, node{line: line, next: terminal})

	d.acquired(NodeResource, slot)
	d.acquired(LineResource, slot)

	if d.head == terminal {
		d.head = linkTo(slot)
	} else {
		d.nodes[d.tail.slot()].next = linkTo(slot)
	}
	d.tail = linkTo(slot)

	return d
}

func (d *Document) IsEmpty() bool {
	return d.head == terminal
}

// Len walks the chain, so it is linear in the number of lines.
func (d *Document) Len() int {
	result := 0
	for l := d.head; l != terminal; l = d.nodes[l.slot()].next {
		result++
	}
	return result
}

// ForEach calls f for every line, head to tail. It stops at the first error
// returned by f and returns it.
func (d *Document) ForEach(f func(line Line) error) error {
	for l := d.head; l != terminal; l = d.nodes[l.slot()].next {
		err := f(d.nodes[l.slot()].line)
		if err != nil {
			return err
		}
	}

	return nil
}

// Lines returns a copy of the lines, in order.
func (d *Document) Lines() []Line {
	result := make([]Line, 0, len(d.nodes))

	_ = d.ForEach(func(line Line) error {
		result = append(result, line)
		return nil
	})

	return result
}

// WriteTo writes every line verbatim, in order.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64

	err := d.ForEach(func(line Line) error {
		n, err := io.WriteString(w, string(line))
		total += int64(n)
		return err
	})

	return total, err
}

// Destroy releases every node and every line exactly once and leaves the
// document empty.
func (d *Document) Destroy() {
	l := d.head
	for l != terminal {
		slot := l.slot()
		next := d.nodes[slot].next

		d.nodes[slot].line = ""
		d.released(LineResource, slot)

		d.nodes[slot] = node{}
		d.released(NodeResource, slot)

		l = next
	}

	d.nodes = nil
	d.head = terminal
	d.tail = terminal
}

func (d *Document) acquired(kind Resource, slot int) {
	if d.tracker != nil {
		d.tracker.Acquired(kind, slot)
	}
}

func (d *Document) released(kind Resource, slot int) {
	if d.tracker != nil {
		d.tracker.Released(kind, slot)
	}
}
