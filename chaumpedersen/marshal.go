package chaumpedersen

import (
	"encoding/json"

	"github.com/barnettsmart/mentalpoker/curve"
)

type proofJSON struct {
	CommitG  json.RawMessage `json:"commit_g"`
	CommitH  json.RawMessage `json:"commit_h"`
	Response json.RawMessage `json:"response"`
}

func (p Proof) MarshalJSON() ([]byte, error) {
	commitG, err := p.CommitG.MarshalJSON()
	if err != nil {
		return nil, err
	}
	commitH, err := p.CommitH.MarshalJSON()
	if err != nil {
		return nil, err
	}
	response, err := p.Response.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(proofJSON{CommitG: commitG, CommitH: commitH, Response: response})
}

// ProofUnmarshalJSON decodes a Proof encoded by MarshalJSON. It is a
// package-level function rather than an UnmarshalJSON method because
// CommitG/CommitH are interface fields: decoding them requires
// concrete elements to allocate into, which only group can provide.
func ProofUnmarshalJSON(b []byte, group curve.Group) (Proof, error) {
	var tmp proofJSON
	if err := json.Unmarshal(b, &tmp); err != nil {
		return Proof{}, err
	}

	commitG := group.Element()
	if err := commitG.UnmarshalJSON(tmp.CommitG); err != nil {
		return Proof{}, err
	}
	commitH := group.Element()
	if err := commitH.UnmarshalJSON(tmp.CommitH); err != nil {
		return Proof{}, err
	}
	response := group.NewScalar()
	if err := response.UnmarshalJSON(tmp.Response); err != nil {
		return Proof{}, err
	}

	return Proof{CommitG: commitG, CommitH: commitH, Response: response}, nil
}
