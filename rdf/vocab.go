package rdf

// Well-known namespace IRIs.
const (
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
)

// Datatype IRIs used by the literal constructors.
const (
	XSDString     = XSDNamespace + "string"
	XSDDate       = XSDNamespace + "date"
	XSDDateTime   = XSDNamespace + "dateTime"
	XSDInteger    = XSDNamespace + "integer"
	XSDBoolean    = XSDNamespace + "boolean"
	RDFLangString = RDFNamespace + "langString"
)

// Namespace is an IRI prefix terms can be minted from.
type Namespace string

// NewNamespace returns a Namespace for the given base IRI.
func NewNamespace(base string) Namespace {
	return Namespace(base)
}

// Get returns the IRI term for name within the namespace.
func (ns Namespace) Get(name string) Term {
	return IRI(string(ns) + name)
}

// String returns the base IRI.
func (ns Namespace) String() string {
	return string(ns)
}

var (
	// RDF is the rdf: namespace.
	RDF = NewNamespace(RDFNamespace)
	// XSD is the xsd: namespace.
	XSD = NewNamespace(XSDNamespace)
	// Type is rdf:type.
	Type = RDF.Get("type")
)
