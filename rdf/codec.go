package rdf

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion is bumped whenever the encoded layout changes.
const snapshotVersion = 1

type (
	snapshot struct {
		Version    int          `msgpack:"v"`
		Statements []wireTriple `msgpack:"s"`
	}
	wireTriple [3]wireTerm
	wireTerm   struct {
		Kind     TermKind `msgpack:"k"`
		Value    string   `msgpack:"v"`
		Datatype string   `msgpack:"d,omitempty"`
		Lang     string   `msgpack:"l,omitempty"`
	}
)

// Marshal encodes g as a msgpack snapshot. Statement order is preserved.
func Marshal(g *Graph) ([]byte, error) {
	snap := snapshot{Version: snapshotVersion, Statements: make([]wireTriple, 0, g.Len())}
	for st := range g.All() {
		snap.Statements = append(snap.Statements, wireTriple{
			toWire(st.Subject), toWire(st.Predicate), toWire(st.Object),
		})
	}
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("rdf: encode graph: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a snapshot produced by Marshal.
func Unmarshal(data []byte) (*Graph, error) {
	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("rdf: decode graph: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("rdf: decode graph: unsupported snapshot version %d", snap.Version)
	}
	b := NewBuilder()
	for i, w := range snap.Statements {
		st := NewStatement(fromWire(w[0]), fromWire(w[1]), fromWire(w[2]))
		if st.Subject.IsAny() || st.Predicate.IsAny() || st.Object.IsAny() {
			return nil, fmt.Errorf("rdf: decode graph: statement %d has a wildcard term", i)
		}
		b.Add(st)
	}
	return b.Graph(), nil
}

// MarshalMsgpack implements msgpack.Marshaler so graphs can be embedded in
// larger msgpack documents.
func (g *Graph) MarshalMsgpack() ([]byte, error) {
	return Marshal(g)
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (g *Graph) UnmarshalMsgpack(data []byte) error {
	decoded, err := Unmarshal(data)
	if err != nil {
		return err
	}
	*g = *decoded
	return nil
}

func toWire(t Term) wireTerm {
	return wireTerm{Kind: t.Kind, Value: t.Value, Datatype: t.Datatype, Lang: t.Lang}
}

func fromWire(w wireTerm) Term {
	return Term{Kind: w.Kind, Value: w.Value, Datatype: w.Datatype, Lang: w.Lang}
}
