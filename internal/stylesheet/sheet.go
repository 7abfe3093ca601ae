package stylesheet

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-om2svg/internal/ids"
	"github.com/alnah/go-om2svg/svgom"
)

// Formatter is the indentation state of the output being written.
type Formatter interface {
	// Line writes s at the current indentation followed by the line ending.
	Line(s string)
	Indent()
	Undent()
}

type defKey struct {
	node *svgom.Node
	kind Kind
}

// Sheet holds the class blocks and definitions of one document.
type Sheet struct {
	alloc    *ids.Allocator
	blocks   []*Block
	byKey    map[string]*Block
	byNode   map[*svgom.Node]*Block
	defines  []*Definition
	defByKey map[defKey]*Definition
}

// New returns an empty sheet that allocates definition ids from alloc.
func New(alloc *ids.Allocator) *Sheet {
	if alloc == nil {
		alloc = ids.NewAllocator()
	}
	return &Sheet{
		alloc:    alloc,
		byKey:    make(map[string]*Block),
		byNode:   make(map[*svgom.Node]*Block),
		defByKey: make(map[defKey]*Definition),
	}
}

// Consolidate registers the definitions and class block of every visible
// styled node under root, in document order. Subtrees for which skip
// returns true are left out; skip may be nil.
func (s *Sheet) Consolidate(root *svgom.Node, skip func(*svgom.Node) bool) {
	root.Walk(func(n *svgom.Node) bool {
		if n.Hidden || (skip != nil && skip(n)) {
			return false
		}
		if n.Kind != svgom.KindRoot {
			s.Register(n)
		}
		return true
	})
}

// Register computes the block of n and the definitions it references, and
// the text path definition of a textPath node. Registering a node twice is a
// no-op.
func (s *Sheet) Register(n *svgom.Node) *Block {
	if b, ok := s.byNode[n]; ok {
		return b
	}
	if n.Kind == svgom.KindTextPath && n.PathData != "" {
		s.Define(Definition{Node: n, Kind: KindTextPath, PathData: n.PathData})
	}
	st := n.Style
	if st == nil {
		return nil
	}

	var r refs
	if st.Gradient != nil && len(st.Gradient.Stops) > 0 {
		r.fill = s.Define(Definition{Node: n, Kind: KindGradient, Gradient: st.Gradient}).ID
	}
	if st.Effect != nil {
		r.filter = s.Define(Definition{Node: n, Kind: KindFilter, Effect: st.Effect}).ID
	}

	props := compute(st, r)
	if len(props) == 0 {
		return nil
	}
	b := &Block{Props: props}
	if existing, ok := s.byKey[b.key()]; ok {
		b = existing
	} else {
		b.Class = className(len(s.blocks))
		s.blocks = append(s.blocks, b)
		s.byKey[b.key()] = b
	}
	s.byNode[n] = b
	return b
}

func className(i int) string {
	return "st" + strconv.Itoa(i)
}

// HasStyle reports whether n has a class block.
func (s *Sheet) HasStyle(n *svgom.Node) bool {
	_, ok := s.byNode[n]
	return ok
}

// ClassName returns the class of n, or "".
func (s *Sheet) ClassName(n *svgom.Node) string {
	if b, ok := s.byNode[n]; ok {
		return b.Class
	}
	return ""
}

// Block returns the class block of n, or nil.
func (s *Sheet) Block(n *svgom.Node) *Block {
	return s.byNode[n]
}

// Define registers d unless a definition for the same node and kind exists,
// and returns the stored one. An empty ID is allocated from the sheet's
// allocator.
func (s *Sheet) Define(d Definition) *Definition {
	k := defKey{node: d.Node, kind: d.Kind}
	if existing, ok := s.defByKey[k]; ok {
		return existing
	}
	if d.ID == "" {
		d.ID = s.alloc.NextUnique(d.prefix())
	}
	def := &d
	s.defines = append(s.defines, def)
	s.defByKey[k] = def
	return def
}

// Definition returns the definition registered for n and kind.
func (s *Sheet) Definition(n *svgom.Node, kind Kind) (*Definition, bool) {
	d, ok := s.defByKey[defKey{node: n, kind: kind}]
	return d, ok
}

// HasRules reports whether any class block exists.
func (s *Sheet) HasRules() bool { return len(s.blocks) > 0 }

// HasDefinitions reports whether any definition exists.
func (s *Sheet) HasDefinitions() bool { return len(s.defines) > 0 }

// WriteRules writes the <style> element.
func (s *Sheet) WriteRules(f Formatter) {
	if !s.HasRules() {
		return
	}
	f.Line("<style>")
	f.Indent()
	for _, b := range s.blocks {
		var sb strings.Builder
		sb.WriteString(".")
		sb.WriteString(b.Class)
		sb.WriteString(" {")
		for _, p := range b.Props {
			sb.WriteString(p.Name)
			sb.WriteString(": ")
			sb.WriteString(p.Value)
			sb.WriteString("; ")
		}
		f.Line(Escape(strings.TrimSuffix(sb.String(), " ") + "}"))
	}
	f.Undent()
	f.Line("</style>")
}

// WriteDefinitions writes every definition in registration order.
func (s *Sheet) WriteDefinitions(f Formatter) {
	for _, d := range s.defines {
		d.write(f)
	}
}

// Escape escapes text for use in markup content or a quoted attribute.
func Escape(s string) string {
	return html.EscapeString(s)
}
