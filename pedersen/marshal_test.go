package pedersen

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barnettsmart/mentalpoker/curve"
)

func TestCommitKeyJSONRoundTrip(t *testing.T) {
	group := curve.Ristretto255()
	ck, err := Setup(rand.Reader, group, 3)
	require.NoError(t, err)

	data, err := ck.MarshalJSON()
	require.NoError(t, err)

	got, err := CommitKeyUnmarshalJSON(data, group)
	require.NoError(t, err)

	require.True(t, got.H.IsEqual(ck.H))
	require.Len(t, got.G, len(ck.G))
	for i := range ck.G {
		require.True(t, got.G[i].IsEqual(ck.G[i]))
	}

	v := []*curve.Scalar{group.RandomScalar(), group.RandomScalar(), group.RandomScalar()}
	r := group.RandomScalar()
	want, err := ck.Commit(v, r)
	require.NoError(t, err)
	got2, err := got.Commit(v, r)
	require.NoError(t, err)
	require.True(t, want.IsEqual(got2))
}

func TestCommitKeyUnmarshalJSONRejectsMalformed(t *testing.T) {
	group := curve.Ristretto255()
	_, err := CommitKeyUnmarshalJSON([]byte(`{"h":"not valid","g":[]}`), group)
	require.Error(t, err)
}
