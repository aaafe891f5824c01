package rdf

import (
	"strings"

	"github.com/google/uuid"
)

// TermKind identifies the kind of an RDF term.
type TermKind uint8

// Term kinds. The zero kind marks the wildcard term used in patterns.
const (
	KindAny TermKind = iota
	KindIRI
	KindLiteral
	KindBlank
)

// String returns the kind name.
func (k TermKind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindLiteral:
		return "literal"
	case KindBlank:
		return "blank"
	default:
		return "any"
	}
}

// Term is a node of an RDF statement: an IRI, a literal or a blank node.
// Terms are comparable values; two terms are equal when every field is equal.
// The zero Term is the wildcard Any.
type Term struct {
	Kind     TermKind
	Value    string // IRI, lexical form, or blank node label
	Datatype string // literal datatype IRI
	Lang     string // literal language tag
}

// Any matches every term in a Pattern.
var Any = Term{}

// IRI returns an IRI term.
func IRI(v string) Term {
	return Term{Kind: KindIRI, Value: v}
}

// Literal returns a literal with the given datatype IRI. An empty datatype
// defaults to xsd:string.
func Literal(v, datatype string) Term {
	if datatype == "" {
		datatype = XSDString
	}
	return Term{Kind: KindLiteral, Value: v, Datatype: datatype}
}

// String returns an xsd:string literal.
func String(v string) Term {
	return Literal(v, XSDString)
}

// Date returns an xsd:date literal. The lexical form is not validated.
func Date(v string) Term {
	return Literal(v, XSDDate)
}

// LangString returns a language-tagged rdf:langString literal.
func LangString(v, lang string) Term {
	return Term{Kind: KindLiteral, Value: v, Datatype: RDFLangString, Lang: strings.ToLower(lang)}
}

// Blank returns a blank node with the given label.
func Blank(label string) Term {
	return Term{Kind: KindBlank, Value: label}
}

// NewBlankNode returns a blank node with a fresh random label.
func NewBlankNode() Term {
	return Blank(uuid.NewString())
}

// IsAny reports whether t is the wildcard.
func (t Term) IsAny() bool {
	return t.Kind == KindAny
}

// IsIRI reports whether t is an IRI.
func (t Term) IsIRI() bool {
	return t.Kind == KindIRI
}

// IsLiteral reports whether t is a literal.
func (t Term) IsLiteral() bool {
	return t.Kind == KindLiteral
}

// IsBlank reports whether t is a blank node.
func (t Term) IsBlank() bool {
	return t.Kind == KindBlank
}

// String returns the IRI, the literal's lexical form, or the blank node
// label, without any N-Triples decoration.
func (t Term) String() string {
	return t.Value
}

// NTriples returns the term in N-Triples notation.
func (t Term) NTriples() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	case KindLiteral:
		lit := `"` + escaper.Replace(t.Value) + `"`
		switch {
		case t.Lang != "":
			return lit + "@" + t.Lang
		case t.Datatype != "" && t.Datatype != XSDString:
			return lit + "^^<" + t.Datatype + ">"
		}
		return lit
	default:
		return "?"
	}
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

// LocalID returns the last path segment or fragment of an identifier:
//
//	LocalID("http://id.example.com/1")                  // "1"
//	LocalID("http://id.example.com/schema#partyName")   // "partyName"
//	LocalID("1")                                        // "1"
func LocalID(iri string) string {
	iri = strings.TrimRight(iri, "/#")
	if i := strings.LastIndexAny(iri, "/#"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}
