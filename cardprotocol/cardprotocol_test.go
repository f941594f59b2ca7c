package cardprotocol

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barnettsmart/mentalpoker/card"
	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/transcript"
)

const deckSize = 4 // 2 rows x 2 cols

func setupSession(t *testing.T) (Parameters, curve.Element, []PlayerKeyPair) {
	group := curve.Ristretto255()
	params, err := Setup(rand.Reader, group, deckSize)
	require.NoError(t, err)

	alice := PlayerKeygen(rand.Reader, params, []byte("alice"))
	bob := PlayerKeygen(rand.Reader, params, []byte("bob"))
	players := []PlayerKeyPair{alice, bob}

	registered := make([]RegisteredPlayer, len(players))
	for i, p := range players {
		proof := ProveKeyOwnership(params, transcript.New([]byte("session")), p)
		registered[i] = RegisteredPlayer{ID: p.ID, PK: p.KeyPair.PK, Proof: proof}
	}

	aggPK, err := ComputeAggregateKey(params, transcript.New([]byte("session")), registered)
	require.NoError(t, err)

	return params, aggPK, players
}

func TestKeyOwnershipAndAggregateKey(t *testing.T) {
	params, aggPK, players := setupSession(t)

	want := params.Group.Identity()
	for _, p := range players {
		want = params.Group.Element().Add(want, p.KeyPair.PK)
	}
	require.True(t, aggPK.IsEqual(want))
}

func TestComputeAggregateKeyRejectsBadProof(t *testing.T) {
	params, _, players := setupSession(t)

	bad := ProveKeyOwnership(params, transcript.New([]byte("wrong-session")), players[0])
	registered := []RegisteredPlayer{{ID: players[0].ID, PK: players[0].KeyPair.PK, Proof: bad}}

	_, err := ComputeAggregateKey(params, transcript.New([]byte("session")), registered)
	require.Error(t, err)
}

func TestMaskRemaskVerifyRoundTrip(t *testing.T) {
	params, aggPK, _ := setupSession(t)
	group := params.Group

	original := group.Random()
	r := group.RandomScalar()
	mc := Mask(params, transcript.New([]byte("t")), aggPK, original, r)
	require.True(t, VerifyMask(params, transcript.New([]byte("t")), aggPK, original, mc))

	r2 := group.RandomScalar()
	remasked := Remask(params, transcript.New([]byte("t")), aggPK, mc, r2)
	require.True(t, VerifyRemask(params, transcript.New([]byte("t")), aggPK, mc, remasked))

	// The remasked card is the masking of the same card under r + r2.
	combined := Mask(params, transcript.New([]byte("t")), aggPK, original, group.NewScalar().Add(r, r2))
	require.True(t, combined.Ciphertext.C1.IsEqual(remasked.Ciphertext.C1))
	require.True(t, combined.Ciphertext.C2.IsEqual(remasked.Ciphertext.C2))
}

func TestRevealAndUnmaskRoundTrip(t *testing.T) {
	params, aggPK, players := setupSession(t)
	group := params.Group

	original := group.Random()
	mc := Mask(params, transcript.New([]byte("t")), aggPK, original, group.RandomScalar())

	tokens := make([]RevealToken, len(players))
	for i, p := range players {
		rt := ComputeRevealToken(params, transcript.New([]byte("t")), p, mc)
		require.True(t, VerifyRevealToken(params, transcript.New([]byte("t")), p.KeyPair.PK, mc, rt))
		tokens[i] = rt
	}

	opened, err := Unmask(params, transcript.New([]byte("t")), aggPK, mc, tokens)
	require.NoError(t, err)
	require.True(t, opened.IsEqual(original))
}

func TestUnmaskRejectsIncompleteKeySet(t *testing.T) {
	params, aggPK, players := setupSession(t)
	group := params.Group

	original := group.Random()
	mc := Mask(params, transcript.New([]byte("t")), aggPK, original, group.RandomScalar())

	rt := ComputeRevealToken(params, transcript.New([]byte("t")), players[0], mc)
	_, err := Unmask(params, transcript.New([]byte("t")), aggPK, mc, []RevealToken{rt})
	require.Error(t, err)
}

func TestUnmaskRejectsTamperedToken(t *testing.T) {
	params, aggPK, players := setupSession(t)
	group := params.Group

	original := group.Random()
	mc := Mask(params, transcript.New([]byte("t")), aggPK, original, group.RandomScalar())

	tokens := make([]RevealToken, len(players))
	for i, p := range players {
		tokens[i] = ComputeRevealToken(params, transcript.New([]byte("t")), p, mc)
	}
	tokens[0].Token = group.Random()

	_, err := Unmask(params, transcript.New([]byte("t")), aggPK, mc, tokens)
	require.Error(t, err)
}

func TestShuffleAndRemaskRoundTrip(t *testing.T) {
	params, aggPK, _ := setupSession(t)
	group := params.Group

	deck := make([]MaskedCard, deckSize)
	for i := range deck {
		deck[i] = Mask(params, transcript.New([]byte("t")), aggPK, group.Random(), group.RandomScalar())
	}

	perm, err := card.New([]int{2, 0, 3, 1})
	require.NoError(t, err)
	rho := make([]*curve.Scalar, deckSize)
	for i := range rho {
		rho[i] = group.RandomScalar()
	}

	result, err := ShuffleAndRemask(params, transcript.New([]byte("shuffle")), aggPK, deck, perm, rho, 2, 2)
	require.NoError(t, err)

	err = VerifyShuffle(params, transcript.New([]byte("shuffle")), aggPK, deck, result.New, 2, 2, result.Proof)
	require.NoError(t, err)
}

func TestVerifyShuffleRejectsTamperedDeck(t *testing.T) {
	params, aggPK, _ := setupSession(t)
	group := params.Group

	deck := make([]MaskedCard, deckSize)
	for i := range deck {
		deck[i] = Mask(params, transcript.New([]byte("t")), aggPK, group.Random(), group.RandomScalar())
	}

	perm, err := card.New([]int{1, 0, 3, 2})
	require.NoError(t, err)
	rho := make([]*curve.Scalar, deckSize)
	for i := range rho {
		rho[i] = group.RandomScalar()
	}

	result, err := ShuffleAndRemask(params, transcript.New([]byte("shuffle")), aggPK, deck, perm, rho, 2, 2)
	require.NoError(t, err)

	result.New[0] = Remask(params, transcript.New([]byte("tamper")), aggPK, result.New[0], group.RandomScalar())
	err = VerifyShuffle(params, transcript.New([]byte("shuffle")), aggPK, deck, result.New, 2, 2, result.Proof)
	require.Error(t, err)
}
