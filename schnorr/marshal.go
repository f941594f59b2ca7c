package schnorr

import (
	"encoding/json"

	"github.com/barnettsmart/mentalpoker/curve"
)

type proofJSON struct {
	Commitment json.RawMessage `json:"commitment"`
	Response   json.RawMessage `json:"response"`
}

func (p Proof) MarshalJSON() ([]byte, error) {
	commitment, err := p.Commitment.MarshalJSON()
	if err != nil {
		return nil, err
	}
	response, err := p.Response.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(proofJSON{Commitment: commitment, Response: response})
}

// ProofUnmarshalJSON decodes a Proof encoded by MarshalJSON. It is a
// package-level function rather than an UnmarshalJSON method because
// Commitment is an interface field: decoding it requires a concrete
// element to allocate into, which only group can provide.
func ProofUnmarshalJSON(b []byte, group curve.Group) (Proof, error) {
	var tmp proofJSON
	if err := json.Unmarshal(b, &tmp); err != nil {
		return Proof{}, err
	}

	commitment := group.Element()
	if err := commitment.UnmarshalJSON(tmp.Commitment); err != nil {
		return Proof{}, err
	}
	response := group.NewScalar()
	if err := response.UnmarshalJSON(tmp.Response); err != nil {
		return Proof{}, err
	}

	return Proof{Commitment: commitment, Response: response}, nil
}
