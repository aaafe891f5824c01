package mapper

import (
	"github.com/syssam/grom/rdf"
)

// Object is a domain object as seen by the merger: an identifier and the
// graph of statements it owns (those whose subject is the object).
type Object interface {
	ID() string
	Graph() *rdf.Graph
}

// Associator is implemented by objects that can resolve their own
// associations by name, e.g. "dummy_party_memberships".
type Associator interface {
	Association(name string) ([]Object, error)
}

// Resolver resolves a named association of an object into the ordered
// sequence of objects it refers to. A nil slice with a nil error means the
// collaborator had no data for the association; an association without
// members is an empty, non-nil slice.
type Resolver interface {
	Resolve(obj Object, name string) ([]Object, error)
}

// The ResolverFunc type is an adapter to allow the use of ordinary functions
// as Resolver.
type ResolverFunc func(obj Object, name string) ([]Object, error)

// Resolve calls f(obj, name).
func (f ResolverFunc) Resolve(obj Object, name string) ([]Object, error) {
	return f(obj, name)
}

// Objects is a convenience for passing typed slices where []Object is
// expected.
func Objects[T Object](objs ...T) []Object {
	out := make([]Object, len(objs))
	for i, o := range objs {
		out[i] = o
	}
	return out
}
