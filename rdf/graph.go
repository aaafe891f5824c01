package rdf

import (
	"iter"
	"strings"
)

// Statement is an RDF triple. Statements are comparable values, so two
// statements with identical terms are the same statement.
type Statement struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// NewStatement returns the statement (s, p, o).
func NewStatement(s, p, o Term) Statement {
	return Statement{Subject: s, Predicate: p, Object: o}
}

// String returns the statement as an N-Triples line without the newline.
func (s Statement) String() string {
	return s.Subject.NTriples() + " " + s.Predicate.NTriples() + " " + s.Object.NTriples() + " ."
}

// Pattern selects statements. A wildcard (Any) position matches every term.
type Pattern struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// NewPattern returns a pattern; pass Any for positions that should not
// constrain the match.
func NewPattern(s, p, o Term) Pattern {
	return Pattern{Subject: s, Predicate: p, Object: o}
}

// Matches reports whether st satisfies the pattern.
func (p Pattern) Matches(st Statement) bool {
	return (p.Subject.IsAny() || p.Subject == st.Subject) &&
		(p.Predicate.IsAny() || p.Predicate == st.Predicate) &&
		(p.Object.IsAny() || p.Object == st.Object)
}

// Graph is an immutable set of statements. Iteration follows first-insertion
// order. A nil *Graph reads as the empty graph.
type Graph struct {
	stmts []Statement
	index map[Statement]struct{}
}

// NewGraph returns a graph holding the given statements; duplicates are
// kept once.
func NewGraph(stmts ...Statement) *Graph {
	return NewBuilder().Add(stmts...).Graph()
}

// Len returns the number of distinct statements.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.stmts)
}

// Has reports whether the graph contains st.
func (g *Graph) Has(st Statement) bool {
	if g == nil {
		return false
	}
	_, ok := g.index[st]
	return ok
}

// Statements returns a copy of the graph's statements in insertion order.
func (g *Graph) Statements() []Statement {
	if g == nil {
		return nil
	}
	return append([]Statement(nil), g.stmts...)
}

// All iterates over the statements in insertion order.
func (g *Graph) All() iter.Seq[Statement] {
	return func(yield func(Statement) bool) {
		if g == nil {
			return
		}
		for _, st := range g.stmts {
			if !yield(st) {
				return
			}
		}
	}
}

// Query returns the statements matching p, in insertion order.
func (g *Graph) Query(p Pattern) Solutions {
	if g == nil {
		return nil
	}
	var out Solutions
	for _, st := range g.stmts {
		if p.Matches(st) {
			out = append(out, st)
		}
	}
	return out
}

// Subjects returns the distinct subjects in order of first appearance.
func (g *Graph) Subjects() []Term {
	if g == nil {
		return nil
	}
	return Solutions(g.stmts).Subjects()
}

// Union returns a new graph holding the statements of g followed by those of
// others that g does not already contain. Neither g nor others are modified.
func (g *Graph) Union(others ...*Graph) *Graph {
	b := NewBuilder().Merge(g)
	for _, o := range others {
		b.Merge(o)
	}
	return b.Graph()
}

// Equal reports whether g and o hold the same set of statements, regardless
// of order.
func (g *Graph) Equal(o *Graph) bool {
	if g.Len() != o.Len() {
		return false
	}
	for st := range g.All() {
		if !o.Has(st) {
			return false
		}
	}
	return true
}

// String returns the graph in N-Triples notation.
func (g *Graph) String() string {
	var b strings.Builder
	for st := range g.All() {
		b.WriteString(st.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Solutions is the ordered result of a pattern query.
type Solutions []Statement

// FirstObject returns the object of the first solution.
func (s Solutions) FirstObject() (Term, bool) {
	if len(s) == 0 {
		return Any, false
	}
	return s[0].Object, true
}

// Objects returns the objects of all solutions.
func (s Solutions) Objects() []Term {
	if len(s) == 0 {
		return nil
	}
	out := make([]Term, len(s))
	for i, st := range s {
		out[i] = st.Object
	}
	return out
}

// Subjects returns the distinct subjects of the solutions in order.
func (s Solutions) Subjects() []Term {
	var (
		out  []Term
		seen = make(map[Term]struct{})
	)
	for _, st := range s {
		if _, ok := seen[st.Subject]; ok {
			continue
		}
		seen[st.Subject] = struct{}{}
		out = append(out, st.Subject)
	}
	return out
}

// Builder accumulates statements into a graph. A Builder is meant to be used
// by a single goroutine; the graphs it produces are immutable.
type Builder struct {
	stmts []Statement
	index map[Statement]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[Statement]struct{})}
}

// Add appends statements not already present.
func (b *Builder) Add(stmts ...Statement) *Builder {
	if b.index == nil {
		b.index = make(map[Statement]struct{}, len(stmts))
	}
	for _, st := range stmts {
		if _, ok := b.index[st]; ok {
			continue
		}
		b.index[st] = struct{}{}
		b.stmts = append(b.stmts, st)
	}
	return b
}

// Merge adds every statement of g.
func (b *Builder) Merge(g *Graph) *Builder {
	if g == nil {
		return b
	}
	return b.Add(g.stmts...)
}

// Len returns the number of statements accumulated so far.
func (b *Builder) Len() int {
	return len(b.stmts)
}

// Graph returns the accumulated graph and resets the builder, so later
// additions never reach a graph already handed out.
func (b *Builder) Graph() *Graph {
	g := &Graph{stmts: b.stmts, index: b.index}
	if g.index == nil {
		g.index = make(map[Statement]struct{})
	}
	b.stmts, b.index = nil, nil
	return g
}
