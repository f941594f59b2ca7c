package elgamal

import (
	"encoding/json"

	"github.com/barnettsmart/mentalpoker/curve"
)

type ciphertextJSON struct {
	C1 json.RawMessage `json:"c1"`
	C2 json.RawMessage `json:"c2"`
}

// MarshalJSON encodes a ciphertext as its two raw element encodings.
func (c Ciphertext) MarshalJSON() ([]byte, error) {
	c1, err := c.C1.MarshalJSON()
	if err != nil {
		return nil, err
	}
	c2, err := c.C2.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(ciphertextJSON{C1: c1, C2: c2})
}

// CiphertextUnmarshalJSON decodes a ciphertext previously produced by
// MarshalJSON. A group is required because curve.Element is an
// interface: the raw sub-messages must be delegated to a concrete,
// group-allocated element before they can unmarshal themselves,
// following the same two-step pattern the teacher's
// BallotUnmarshalJSON uses for its ElGamal ciphertext.
func CiphertextUnmarshalJSON(b []byte, group curve.Group) (Ciphertext, error) {
	var tmp ciphertextJSON
	if err := json.Unmarshal(b, &tmp); err != nil {
		return Ciphertext{}, err
	}

	c1 := group.Element()
	if err := c1.UnmarshalJSON(tmp.C1); err != nil {
		return Ciphertext{}, err
	}
	c2 := group.Element()
	if err := c2.UnmarshalJSON(tmp.C2); err != nil {
		return Ciphertext{}, err
	}

	return Ciphertext{C1: c1, C2: c2}, nil
}
