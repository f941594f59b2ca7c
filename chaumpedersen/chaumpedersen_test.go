package chaumpedersen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/transcript"
)

func TestProveVerifyRoundTrip(t *testing.T) {
	group := curve.Ristretto255()
	g := group.Generator()
	h := group.Random()
	secret := group.RandomScalar()
	x := group.Element().Scale(g, secret)
	y := group.Element().Scale(h, secret)

	proof := Prove(group, transcript.New([]byte("s")), g, h, x, y, secret)
	ok := Verify(group, transcript.New([]byte("s")), g, h, x, y, proof)
	require.True(t, ok)
}

func TestVerifyRejectsInconsistentExponents(t *testing.T) {
	group := curve.Ristretto255()
	g := group.Generator()
	h := group.Random()
	secret := group.RandomScalar()
	other := group.RandomScalar()
	x := group.Element().Scale(g, secret)
	y := group.Element().Scale(h, other)

	proof := Prove(group, transcript.New([]byte("s")), g, h, x, y, secret)
	ok := Verify(group, transcript.New([]byte("s")), g, h, x, y, proof)
	require.False(t, ok)
}
