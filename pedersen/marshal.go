package pedersen

import (
	"encoding/json"

	"github.com/barnettsmart/mentalpoker/curve"
)

type commitKeyJSON struct {
	H json.RawMessage   `json:"h"`
	G []json.RawMessage `json:"g"`
}

func (ck CommitKey) MarshalJSON() ([]byte, error) {
	h, err := ck.H.MarshalJSON()
	if err != nil {
		return nil, err
	}
	g := make([]json.RawMessage, len(ck.G))
	for i, gi := range ck.G {
		enc, err := gi.MarshalJSON()
		if err != nil {
			return nil, err
		}
		g[i] = enc
	}
	return json.Marshal(commitKeyJSON{H: h, G: g})
}

// CommitKeyUnmarshalJSON decodes a CommitKey encoded by MarshalJSON,
// binding it to group. It is a package-level function rather than an
// UnmarshalJSON method because H and each G[i] are interface fields:
// decoding them requires concrete elements to allocate into, which
// only group can provide.
func CommitKeyUnmarshalJSON(b []byte, group curve.Group) (CommitKey, error) {
	var tmp commitKeyJSON
	if err := json.Unmarshal(b, &tmp); err != nil {
		return CommitKey{}, err
	}

	h := group.Element()
	if err := h.UnmarshalJSON(tmp.H); err != nil {
		return CommitKey{}, err
	}

	g := make([]curve.Element, len(tmp.G))
	for i, raw := range tmp.G {
		gi := group.Element()
		if err := gi.UnmarshalJSON(raw); err != nil {
			return CommitKey{}, err
		}
		g[i] = gi
	}

	return CommitKey{Group: group, H: h, G: g}, nil
}
