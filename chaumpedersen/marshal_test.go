package chaumpedersen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/transcript"
)

func TestProofJSONRoundTrip(t *testing.T) {
	group := curve.Ristretto255()
	g := group.Element().BaseScale(group.NewScalar().SetInt64(1))
	h := group.Random()
	x := group.RandomScalar()
	bigX := group.Element().Scale(g, x)
	bigY := group.Element().Scale(h, x)

	proof := Prove(group, transcript.New([]byte("t")), g, h, bigX, bigY, x)

	data, err := proof.MarshalJSON()
	require.NoError(t, err)

	got, err := ProofUnmarshalJSON(data, group)
	require.NoError(t, err)

	require.True(t, got.CommitG.IsEqual(proof.CommitG))
	require.True(t, got.CommitH.IsEqual(proof.CommitH))
	require.True(t, got.Response.IsEqual(proof.Response))
	require.True(t, Verify(group, transcript.New([]byte("t")), g, h, bigX, bigY, got))
}

func TestProofUnmarshalJSONRejectsMalformed(t *testing.T) {
	group := curve.Ristretto255()
	_, err := ProofUnmarshalJSON([]byte(`{"commit_g":"x","commit_h":"y","response":"z"}`), group)
	require.Error(t, err)
}
