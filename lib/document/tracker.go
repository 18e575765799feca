package document

type Resource int

const (
	NodeResource Resource = iota
	LineResource
)

func (r Resource) String() string {
	switch r {
	case NodeResource:
		return "node"
	case LineResource:
		return "line"
	default:
		return "unknown"
	}
}

// Tracker is notified every time the document acquires or releases a node
// or a line. Slots are arena indexes and are only unique between a
// document's creation and its teardown.
type Tracker interface {
	Acquired(kind Resource, slot int)
	Released(kind Resource, slot int)
}
