package mapper

import (
	"github.com/syssam/grom/naming"
	"github.com/syssam/grom/rdf"
)

// Attributes returns the objects of every statement about subject, keyed by
// the property name of the predicate: the predicate's local name in
// snake_case ("partyMembershipEndDate" → "party_membership_end_date").
// Values keep graph order.
func Attributes(g *rdf.Graph, subject rdf.Term) map[string][]rdf.Term {
	attrs := make(map[string][]rdf.Term)
	for _, st := range g.Query(rdf.NewPattern(subject, rdf.Any, rdf.Any)) {
		name := naming.Snake(rdf.LocalID(st.Predicate.Value))
		attrs[name] = append(attrs[name], st.Object)
	}
	return attrs
}

// SubjectsOfType returns the subjects typed as class, in graph order.
func SubjectsOfType(g *rdf.Graph, class rdf.Term) []rdf.Term {
	return g.Query(rdf.NewPattern(rdf.Any, rdf.Type, class)).Subjects()
}
