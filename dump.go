package astdump

import "strings"

// Dump renders a parse tree fragment in compact form.
func Dump(node Node) (string, error) {
	return DumpIndent(node, Indent{})
}

// DumpIndent renders a parse tree fragment. A sequence renders as a
// bracketed, comma separated list of its elements; a single node
// renders as whatever its parser's rendering primitive returns for
// the given indentation. Renderer errors propagate unchanged.
func DumpIndent(node Node, indent Indent) (string, error) {
	switch n := node.(type) {
	case Sequence:
		elems := make([]string, len(n))

		for i := 0; i < len(n); i++ {
			str, err := DumpIndent(n[i], indent)

			if err != nil {
				return "", err
			}

			elems[i] = str
		}

		return "[" + strings.Join(elems, ", ") + "]", nil
	case *Leaf:
		if n == nil || n.Value == nil {
			return "", NewError("invalid node: leaf has no value")
		}

		logDump("dumping %T (%s)", n.Value, indent)

		return n.Value.Dump(indent)
	}

	return "", errInvalidNode(node)
}
