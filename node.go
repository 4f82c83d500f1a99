// Package astdump renders parse tree fragments into strings for
// inspection. A fragment is either a single node produced by an
// external parser or an ordered sequence of sibling fragments. The
// package does not parse source text nor build trees; rendering of a
// single node is delegated to the node itself.
package astdump

type (
	// Node is a parse tree fragment: a single parser node or an
	// ordered sequence of sibling fragments.
	Node interface {
		dumpNode()
	}

	// Dumper is the rendering primitive supplied by the parsing
	// collaborator. Dump returns the node's canonical textual form
	// for the given indentation, or the collaborator's error for
	// values it cannot render.
	Dumper interface {
		Dump(indent Indent) (string, error)
	}

	// Leaf holds a single parser node.
	Leaf struct {
		Value Dumper
	}

	// Sequence is an ordered list of sibling fragments. Elements may
	// themselves be leaves or nested sequences.
	Sequence []Node
)

// NewLeaf creates a fragment wrapping a single parser node.
func NewLeaf(value Dumper) *Leaf {
	return &Leaf{
		Value: value,
	}
}

// NewSequence creates an ordered sequence of fragments.
func NewSequence(nodes ...Node) Sequence {
	return Sequence(nodes)
}

func (l *Leaf) dumpNode() {}

func (s Sequence) dumpNode() {}
