package mapper_test

import (
	"fmt"

	"github.com/syssam/grom/mapper"
	"github.com/syssam/grom/rdf"
)

var (
	ids    = rdf.NewNamespace("http://id.example.com/")
	schema = rdf.NewNamespace("http://id.example.com/schema/")
)

// dummy is a domain object backed by a fixed graph and association table.
type dummy struct {
	id     string
	class  string
	graph  *rdf.Graph
	assocs map[string][]mapper.Object
}

func (d *dummy) ID() string        { return d.id }
func (d *dummy) ClassName() string { return d.class }
func (d *dummy) Graph() *rdf.Graph { return d.graph }

func (d *dummy) Association(name string) ([]mapper.Object, error) {
	objs, ok := d.assocs[name]
	if !ok {
		return nil, fmt.Errorf("unknown association %q", name)
	}
	return objs, nil
}

func newDummyPerson(id, forename, surname string) *dummy {
	s := ids.Get(id)
	return &dummy{
		id:    s.Value,
		class: "DummyPerson",
		graph: rdf.NewGraph(
			rdf.NewStatement(s, rdf.Type, schema.Get("DummyPerson")),
			rdf.NewStatement(s, schema.Get("forename"), rdf.String(forename)),
			rdf.NewStatement(s, schema.Get("surname"), rdf.String(surname)),
		),
		assocs: map[string][]mapper.Object{},
	}
}

func newDummyParty(id, name string) *dummy {
	s := ids.Get(id)
	return &dummy{
		id:    s.Value,
		class: "DummyParty",
		graph: rdf.NewGraph(
			rdf.NewStatement(s, rdf.Type, schema.Get("DummyParty")),
			rdf.NewStatement(s, schema.Get("partyName"), rdf.String(name)),
		),
	}
}

func newDummyPartyMembership(id string, person, party *dummy, endDate string) *dummy {
	s := ids.Get(id)
	return &dummy{
		id:    s.Value,
		class: "DummyPartyMembership",
		graph: rdf.NewGraph(
			rdf.NewStatement(s, rdf.Type, schema.Get("DummyPartyMembership")),
			rdf.NewStatement(s, schema.Get("partyMembershipEndDate"), rdf.Date(endDate)),
			rdf.NewStatement(s, schema.Get("partyMembershipHasParty"), rdf.IRI(party.id)),
			rdf.NewStatement(s, schema.Get("partyMembershipHasPerson"), rdf.IRI(person.id)),
		),
	}
}

// fixture is Daenerys Targaryen with two party memberships, plus Arya Stark.
type fixture struct {
	daenerys, arya           *dummy
	targaryens, dothrakis    *dummy
	membership1, membership2 *dummy
}

func newFixture() fixture {
	f := fixture{
		daenerys:   newDummyPerson("1", "Daenerys", "Targaryen"),
		arya:       newDummyPerson("2", "Arya", "Stark"),
		targaryens: newDummyParty("23", "Targaryens"),
		dothrakis:  newDummyParty("26", "Dothrakis"),
	}
	f.membership1 = newDummyPartyMembership("25", f.daenerys, f.targaryens, "1954-01-12")
	f.membership2 = newDummyPartyMembership("27", f.daenerys, f.dothrakis, "1955-03-11")
	f.daenerys.assocs["dummy_parties"] = mapper.Objects(f.targaryens, f.dothrakis)
	f.daenerys.assocs["dummy_party_memberships"] = mapper.Objects(f.membership1, f.membership2)
	f.arya.assocs["dummy_party_memberships"] = []mapper.Object{}
	return f
}
