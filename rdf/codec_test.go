package rdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/grom/rdf"
)

func TestSnapshot(t *testing.T) {
	g := person("1", "Daenerys", "Targaryen").Union(rdf.NewGraph(
		rdf.NewStatement(rdf.IRI("http://id.example.com/25"), schema.Get("partyMembershipEndDate"), rdf.Date("1954-01-12")),
		rdf.NewStatement(rdf.Blank("b0"), schema.Get("title"), rdf.LangString("Khaleesi", "en")),
	))

	data, err := rdf.Marshal(g)
	require.NoError(t, err)

	got, err := rdf.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, g.Statements(), got.Statements())
}

func TestSnapshotEmpty(t *testing.T) {
	data, err := rdf.Marshal(nil)
	require.NoError(t, err)

	got, err := rdf.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestSnapshotInvalid(t *testing.T) {
	_, err := rdf.Unmarshal([]byte{0xc1})
	assert.Error(t, err)

	data, err := msgpack.Marshal(map[string]any{"v": 99})
	require.NoError(t, err)
	_, err = rdf.Unmarshal(data)
	assert.ErrorContains(t, err, "unsupported snapshot version 99")
}

func TestGraphEmbeddedInMsgpack(t *testing.T) {
	type envelope struct {
		Owner string     `msgpack:"owner"`
		Graph *rdf.Graph `msgpack:"graph"`
	}

	in := envelope{Owner: "1", Graph: person("1", "Daenerys", "Targaryen")}
	data, err := msgpack.Marshal(&in)
	require.NoError(t, err)

	var out envelope
	require.NoError(t, msgpack.Unmarshal(data, &out))
	assert.Equal(t, "1", out.Owner)
	require.NotNil(t, out.Graph)
	assert.True(t, in.Graph.Equal(out.Graph))
}
