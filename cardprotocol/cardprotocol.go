// Package cardprotocol implements the Barnett-Smart mental-poker card
// protocol as a facade over the lower-level primitives: ElGamal
// encryption, Pedersen commitments, Schnorr and Chaum-Pedersen proofs,
// and the Bayer-Groth shuffle argument. It exposes one function per
// protocol operation (setup, keygen, mask, remask, reveal, unmask,
// shuffle-and-remask, verify-shuffle), the same facade shape the
// teacher's top-level main.go gives the single-candidate vote protocol
// it drives (encryptVote / castVote / verification), scaled up to a
// full deck of cards held jointly by a group of players.
package cardprotocol

import (
	"io"

	"github.com/barnettsmart/mentalpoker/card"
	"github.com/barnettsmart/mentalpoker/cerr"
	"github.com/barnettsmart/mentalpoker/chaumpedersen"
	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/elgamal"
	"github.com/barnettsmart/mentalpoker/pedersen"
	"github.com/barnettsmart/mentalpoker/schnorr"
	"github.com/barnettsmart/mentalpoker/transcript"
	"github.com/barnettsmart/mentalpoker/zkp/shuffle"
)

// Parameters bundles the public parameters every participant in a
// session agrees on: the group, the ElGamal parameters over it, and
// the Pedersen commitment key used by the shuffle argument.
type Parameters struct {
	Group  curve.Group
	EG     elgamal.Parameters
	Commit pedersen.CommitKey
}

// Setup derives session parameters for a deck of deckSize cards from a
// caller-chosen group. The commit key carries deckSize generators; a
// shuffle that lays the deck out as m rows of n cards (m*n = deckSize)
// uses the first n of them.
func Setup(rng io.Reader, group curve.Group, deckSize int) (Parameters, error) {
	ck, err := pedersen.Setup(rng, group, deckSize)
	if err != nil {
		return Parameters{}, err
	}
	return Parameters{
		Group:  group,
		EG:     elgamal.Parameters{Group: group},
		Commit: ck,
	}, nil
}

// PlayerKeyPair is a single player's ElGamal keypair plus the
// identifier its key-ownership proof is bound to.
type PlayerKeyPair struct {
	ID      []byte
	KeyPair elgamal.KeyPair
}

// PlayerKeygen samples a fresh ElGamal keypair for a player.
func PlayerKeygen(rng io.Reader, params Parameters, id []byte) PlayerKeyPair {
	return PlayerKeyPair{ID: id, KeyPair: elgamal.KeyGen(rng, params.EG)}
}

// ProveKeyOwnership proves knowledge of the secret key behind a
// player's public key, binding the proof to the player's id.
func ProveKeyOwnership(params Parameters, tr *transcript.Transcript, player PlayerKeyPair) schnorr.Proof {
	return schnorr.Prove(params.Group, tr, player.ID, player.KeyPair.PK, player.KeyPair.SK)
}

// VerifyKeyOwnership checks a key-ownership proof for a public key
// claimed to belong to id.
func VerifyKeyOwnership(params Parameters, tr *transcript.Transcript, id []byte, pk curve.Element, proof schnorr.Proof) bool {
	return schnorr.Verify(params.Group, tr, id, pk, proof)
}

// RegisteredPlayer is a player's public key together with the id and
// key-ownership proof it was registered under, the only shape
// ComputeAggregateKey accepts; ComputeAggregateKey verifies the proof
// itself.
type RegisteredPlayer struct {
	ID    []byte
	PK    curve.Element
	Proof schnorr.Proof
}

// ComputeAggregateKey verifies every player's key-ownership proof and,
// only if all verify, sums the public keys into the joint key used to
// mask and unmask cards. It fails closed on the first invalid proof,
// making this the mandatory choke point through which every key must
// pass before it can contribute to the aggregate (see DESIGN.md's
// resolution of the add_player Open Question).
func ComputeAggregateKey(params Parameters, tr *transcript.Transcript, players []RegisteredPlayer) (curve.Element, error) {
	agg := params.Group.Identity()
	for _, p := range players {
		if !VerifyKeyOwnership(params, tr.Clone(), p.ID, p.PK, p.Proof) {
			return nil, cerr.NewProofVerificationError("KeyOwnership")
		}
		agg = params.Group.Element().Add(agg, p.PK)
	}
	return agg, nil
}

// MaskedCard is a card masked (encrypted) under the joint aggregate
// key, together with the proof that the masking is well-formed.
type MaskedCard struct {
	Ciphertext elgamal.Ciphertext
	Proof      chaumpedersen.Proof
}

// Mask encrypts an open card under the aggregate public key with
// masking factor r, proving r is the same randomness used for both
// ciphertext components (C1 = rG, C2 = card + r*PK).
func Mask(params Parameters, tr *transcript.Transcript, aggPK curve.Element, c card.Card, r *curve.Scalar) MaskedCard {
	ct := elgamal.Encrypt(params.EG, aggPK, c, r)
	g := params.Group.Generator()
	proof := chaumpedersen.Prove(params.Group, tr, g, aggPK, ct.C1, params.Group.Element().Subtract(ct.C2, c), r)
	return MaskedCard{Ciphertext: ct, Proof: proof}
}

// VerifyMask checks that a masked card's ciphertext was produced with
// consistent randomness across both components, against the claimed
// open card.
func VerifyMask(params Parameters, tr *transcript.Transcript, aggPK curve.Element, c card.Card, mc MaskedCard) bool {
	g := params.Group.Generator()
	y := params.Group.Element().Subtract(mc.Ciphertext.C2, c)
	return chaumpedersen.Verify(params.Group, tr, g, aggPK, mc.Ciphertext.C1, y, mc.Proof)
}

// Remask re-randomizes a masked card under the same aggregate key,
// proving the new ciphertext still decrypts to the same card.
func Remask(params Parameters, tr *transcript.Transcript, aggPK curve.Element, mc MaskedCard, r *curve.Scalar) MaskedCard {
	newCt := elgamal.Rerandomize(params.EG, aggPK, mc.Ciphertext, r)
	g := params.Group.Generator()
	diffC1 := params.Group.Element().Subtract(newCt.C1, mc.Ciphertext.C1)
	diffC2 := params.Group.Element().Subtract(newCt.C2, mc.Ciphertext.C2)
	proof := chaumpedersen.Prove(params.Group, tr, g, aggPK, diffC1, diffC2, r)
	return MaskedCard{Ciphertext: newCt, Proof: proof}
}

// VerifyRemask checks that newMc was obtained from oldMc by adding a
// consistent re-randomization to both ciphertext components.
func VerifyRemask(params Parameters, tr *transcript.Transcript, aggPK curve.Element, oldMc, newMc MaskedCard) bool {
	g := params.Group.Generator()
	diffC1 := params.Group.Element().Subtract(newMc.Ciphertext.C1, oldMc.Ciphertext.C1)
	diffC2 := params.Group.Element().Subtract(newMc.Ciphertext.C2, oldMc.Ciphertext.C2)
	return chaumpedersen.Verify(params.Group, tr, g, aggPK, diffC1, diffC2, newMc.Proof)
}

// RevealToken is one player's contribution toward unmasking a card:
// their public key, their share of the shared secret behind the
// card's ciphertext, and a proof the share was computed with the
// secret key behind that public key. Unmask requires all three, since
// it must verify the proof and check the contributing keys sum to the
// aggregate key the card was masked under before trusting the shares.
type RevealToken struct {
	PK    curve.Element
	Token curve.Element
	Proof chaumpedersen.Proof
}

// ComputeRevealToken computes a player's reveal token for a masked
// card's C1 component, proving the token used the same secret key as
// the player's public key.
func ComputeRevealToken(params Parameters, tr *transcript.Transcript, player PlayerKeyPair, mc MaskedCard) RevealToken {
	token := params.Group.Element().Scale(mc.Ciphertext.C1, player.KeyPair.SK)
	g := params.Group.Generator()
	proof := chaumpedersen.Prove(params.Group, tr, g, mc.Ciphertext.C1, player.KeyPair.PK, token, player.KeyPair.SK)
	return RevealToken{PK: player.KeyPair.PK, Token: token, Proof: proof}
}

// VerifyRevealToken checks a reveal token against the player's public
// key and the masked card it was computed from.
func VerifyRevealToken(params Parameters, tr *transcript.Transcript, pk curve.Element, mc MaskedCard, rt RevealToken) bool {
	g := params.Group.Generator()
	return chaumpedersen.Verify(params.Group, tr, g, mc.Ciphertext.C1, pk, rt.Token, rt.Proof)
}

// Unmask recovers the open card from a masked card given every
// registered player's reveal token. It is the mandatory choke point
// for opening a card: it verifies every token's proof, requires the
// token-providing public keys to sum to the aggPK the card was masked
// under, and only then subtracts the combined shares from the
// ciphertext. It fails closed on the first invalid proof or on a
// aggregate-key mismatch, so no caller can open a card from
// unverified or incomplete reveal shares.
func Unmask(params Parameters, tr *transcript.Transcript, aggPK curve.Element, mc MaskedCard, tokens []RevealToken) (card.Card, error) {
	pkSum := params.Group.Identity()
	shared := params.Group.Identity()
	for _, t := range tokens {
		if !VerifyRevealToken(params, tr.Clone(), t.PK, mc, t) {
			return nil, cerr.NewProofVerificationError("RevealToken")
		}
		pkSum = params.Group.Element().Add(pkSum, t.PK)
		shared = params.Group.Element().Add(shared, t.Token)
	}
	if !pkSum.IsEqual(aggPK) {
		return nil, cerr.NewProofVerificationError("RevealToken")
	}
	return params.Group.Element().Subtract(mc.Ciphertext.C2, shared), nil
}

// ShuffleResult is the output of shuffling and remasking a deck of
// masked cards: the new masked deck plus the proof it is a valid
// shuffle-and-remask of the old one.
type ShuffleResult struct {
	New   []MaskedCard
	Proof shuffle.Proof
}

func ciphertextsOf(mcs []MaskedCard) []elgamal.Ciphertext {
	cts := make([]elgamal.Ciphertext, len(mcs))
	for i, mc := range mcs {
		cts[i] = mc.Ciphertext
	}
	return cts
}

// ShuffleAndRemask permutes and re-randomizes a deck of masked cards
// according to perm and the per-card randomness rho, proving the
// result is a valid shuffle of the input deck without revealing perm
// or rho.
func ShuffleAndRemask(params Parameters, tr *transcript.Transcript, aggPK curve.Element, old []MaskedCard, perm *card.Permutation, rho []*curve.Scalar, m, n int) (ShuffleResult, error) {
	oldCts := ciphertextsOf(old)
	newCts := make([]elgamal.Ciphertext, len(oldCts))
	for j, ct := range oldCts {
		newCts[perm.At(j)] = elgamal.Rerandomize(params.EG, aggPK, ct, rho[j])
	}

	stmt := shuffle.Statement{Params: params.EG, PK: aggPK, Old: oldCts, New: newCts, M: m, N: n}
	wit := shuffle.Witness{Permutation: perm, Rho: rho}
	proof, err := shuffle.Prove(params.Group, params.Commit, tr, stmt, wit)
	if err != nil {
		return ShuffleResult{}, err
	}

	newMasked := make([]MaskedCard, len(newCts))
	for i, ct := range newCts {
		newMasked[i] = MaskedCard{Ciphertext: ct}
	}
	return ShuffleResult{New: newMasked, Proof: proof}, nil
}

// VerifyShuffle checks that newDeck is a valid shuffle-and-remask of
// oldDeck under the given proof.
func VerifyShuffle(params Parameters, tr *transcript.Transcript, aggPK curve.Element, oldDeck, newDeck []MaskedCard, m, n int, proof shuffle.Proof) error {
	stmt := shuffle.Statement{
		Params: params.EG, PK: aggPK,
		Old: ciphertextsOf(oldDeck), New: ciphertextsOf(newDeck),
		M: m, N: n,
	}
	return shuffle.Verify(params.Group, params.Commit, tr, stmt, proof)
}
