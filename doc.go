// Package grom is the core of an object-mapping layer backed by RDF triples.
//
// The module is split into small, stateless packages:
//
//   - naming converts between class names and property names
//     (DummyPartyMembership, dummy_party_membership, dummy_party_memberships).
//   - resource derives REST URLs for collections, members and associations.
//   - rdf models statements and graphs with pattern queries and
//     deduplicating union.
//   - mapper merges the graphs of related domain objects, including objects
//     reached through a join entity, into one graph.
//   - config loads the API endpoint and related settings.
//
// This package holds the error taxonomy shared by all of them.
//
// # Errors
//
// Inflections reject malformed names with a *NameError:
//
//	if _, err := naming.ClassName("Bad Name"); grom.IsNameError(err) {
//	    // programming error: fix the caller
//	}
//
// Graph merges fail with a *MissingDependencyError instead of returning a
// partial graph:
//
//	g, err := mapper.CollectiveThroughGraph(person, parties, "party_memberships")
//	if errors.Is(err, grom.ErrMissingDependency) {
//	    // a collaborator returned no data
//	}
package grom
