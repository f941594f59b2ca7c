package card

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonBijection(t *testing.T) {
	_, err := New([]int{0, 0, 1})
	require.Error(t, err)

	_, err = New([]int{0, 2})
	require.Error(t, err)
}

func TestApplyAndInverseRoundTrip(t *testing.T) {
	perm, err := New([]int{2, 0, 1})
	require.NoError(t, err)

	old := []string{"a", "b", "c"}
	shuffled := Apply(perm, old)
	require.Equal(t, []string{"b", "c", "a"}, shuffled)

	restored := Apply(perm.Inverse(), shuffled)
	require.Equal(t, old, restored)
}

func TestAtMatchesImage(t *testing.T) {
	perm, err := New([]int{1, 2, 0})
	require.NoError(t, err)

	for j := 0; j < perm.Len(); j++ {
		require.Equal(t, perm.Image[j], perm.At(j))
	}
}
