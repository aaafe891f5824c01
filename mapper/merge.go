// Package mapper merges the graphs owned by related domain objects into a
// single graph that can be queried as a whole.
//
// CollectiveGraph unions the graphs of a sequence of objects.
// CollectiveThroughGraph also pulls in the join entities linking an owner to
// its associated objects, such as the party memberships linking a person to
// parties:
//
//	g, err := mapper.CollectiveThroughGraph(person, parties, "party_memberships")
//
// Merging never synthesizes statements; it only unions what each object
// already owns. When an object, its graph, or the through association is
// unavailable the merge fails with a *grom.MissingDependencyError rather than
// returning a partial graph.
package mapper

import (
	"fmt"
	"log/slog"

	"github.com/syssam/grom"
	"github.com/syssam/grom/rdf"
)

// Merger merges object graphs. The zero value is not usable; use New.
// A Merger holds no mutable state and is safe for concurrent use.
type Merger struct {
	resolver Resolver
	logger   *slog.Logger
}

// Option configures a Merger.
type Option func(*Merger)

// WithResolver sets the resolver used for through associations. Objects
// implementing Associator are used when no resolver is set.
func WithResolver(r Resolver) Option {
	return func(m *Merger) {
		m.resolver = r
	}
}

// WithLogger sets the logger. Merges log at debug level, missing
// dependencies at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(m *Merger) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns a Merger configured with opts.
func New(opts ...Option) *Merger {
	m := &Merger{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var std = New()

// CollectiveGraph returns the union of the graphs of objects.
func CollectiveGraph(objects []Object) (*rdf.Graph, error) {
	return std.CollectiveGraph(objects)
}

// CollectiveThroughGraph returns the union of the graphs of owner, each
// associated object, and each join entity of owner's through association.
// The association is resolved with the owner's Associator implementation.
func CollectiveThroughGraph(owner Object, associated []Object, through string) (*rdf.Graph, error) {
	return std.CollectiveThroughGraph(owner, associated, through)
}

// Resolve resolves the named association of obj through its Associator
// implementation.
func Resolve(obj Object, name string) ([]Object, error) {
	return std.Resolve(obj, name)
}

// CollectiveGraph returns the union of the graphs of objects. Repeated
// objects contribute their statements once.
func (m *Merger) CollectiveGraph(objects []Object) (*rdf.Graph, error) {
	b := rdf.NewBuilder()
	for i, obj := range objects {
		g, err := m.graphOf(obj, fmt.Sprintf("object %d", i))
		if err != nil {
			return nil, err
		}
		b.Merge(g)
	}
	m.logger.Debug("merged collective graph",
		"objects", len(objects),
		"statements", b.Len(),
	)
	return b.Graph(), nil
}

// CollectiveThroughGraph returns a graph holding the statements of owner,
// then those of each associated object in order, then those of each join
// entity returned by resolving the through association on owner.
func (m *Merger) CollectiveThroughGraph(owner Object, associated []Object, through string) (*rdf.Graph, error) {
	og, err := m.graphOf(owner, "owner")
	if err != nil {
		return nil, err
	}
	b := rdf.NewBuilder().Merge(og)
	for i, obj := range associated {
		g, err := m.graphOf(obj, fmt.Sprintf("associated object %d", i))
		if err != nil {
			return nil, err
		}
		b.Merge(g)
	}
	joins, err := m.Resolve(owner, through)
	if err != nil {
		return nil, err
	}
	for i, obj := range joins {
		g, err := m.graphOf(obj, fmt.Sprintf("%s %d", through, i))
		if err != nil {
			return nil, err
		}
		b.Merge(g)
	}
	m.logger.Debug("merged collective through graph",
		"owner", owner.ID(),
		"through", through,
		"associated", len(associated),
		"joins", len(joins),
		"statements", b.Len(),
	)
	return b.Graph(), nil
}

// Resolve resolves the named association of obj, using the configured
// Resolver first and the object's own Associator otherwise.
func (m *Merger) Resolve(obj Object, name string) ([]Object, error) {
	if obj == nil {
		return nil, m.missing("", "object", nil)
	}
	dep := "association " + name
	var (
		objs []Object
		err  error
	)
	switch a, ok := obj.(Associator); {
	case m.resolver != nil:
		objs, err = m.resolver.Resolve(obj, name)
	case ok:
		objs, err = a.Association(name)
	default:
		return nil, m.missing(obj.ID(), dep, fmt.Errorf("no resolver for %T", obj))
	}
	if err != nil {
		return nil, m.missing(obj.ID(), dep, err)
	}
	if objs == nil {
		return nil, m.missing(obj.ID(), dep, nil)
	}
	return objs, nil
}

// graphOf returns the graph owned by obj. An empty graph is valid; a nil one
// is not.
func (m *Merger) graphOf(obj Object, role string) (*rdf.Graph, error) {
	if obj == nil {
		return nil, m.missing("", role, nil)
	}
	g := obj.Graph()
	if g == nil {
		return nil, m.missing(obj.ID(), role+" graph", nil)
	}
	return g, nil
}

func (m *Merger) missing(object, dependency string, cause error) error {
	err := grom.NewMissingDependencyError(object, dependency, cause)
	m.logger.Warn("graph merge failed", "error", err)
	return err
}
