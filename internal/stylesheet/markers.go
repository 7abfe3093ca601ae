package stylesheet

import "github.com/alnah/go-om2svg/svgom"

// Markers records what has already been written for a node, keyed by node
// identity and kind.
type Markers struct {
	seen map[defKey]struct{}
}

// Once reports whether this is the first call for n and kind, and marks it
// written.
func (m *Markers) Once(n *svgom.Node, kind Kind) bool {
	if m.seen == nil {
		m.seen = make(map[defKey]struct{})
	}
	k := defKey{node: n, kind: kind}
	if _, ok := m.seen[k]; ok {
		return false
	}
	m.seen[k] = struct{}{}
	return true
}
