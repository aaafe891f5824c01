// Package rdf provides a small in-memory RDF model for the mapping layer.
//
// # Terms and Statements
//
// A Term is an IRI, a literal or a blank node. Statements are comparable
// (subject, predicate, object) values, so identical triples are equal:
//
//	s := rdf.NewStatement(
//	    rdf.IRI("http://id.example.com/1"),
//	    rdf.IRI("http://id.example.com/schema/surname"),
//	    rdf.String("Targaryen"),
//	)
//
// # Graphs
//
// A Graph is an immutable set of statements. Union returns a fresh graph and
// never stores a statement twice:
//
//	merged := person.Union(party, membership)
//
// Graphs are queried with patterns whose wildcard positions are rdf.Any:
//
//	surname, ok := g.Query(rdf.NewPattern(rdf.Any, schema.Get("surname"), rdf.Any)).FirstObject()
//
// A Builder accumulates statements when many graphs are merged in one pass.
//
// # Snapshots
//
// Marshal and Unmarshal encode graphs with msgpack so they can be handed
// between processes without a Turtle round trip.
package rdf
