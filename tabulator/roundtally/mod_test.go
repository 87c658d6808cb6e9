package roundtally

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/rcir/types"
)

func Test_FirstSeenOrder(t *testing.T) {
	tally := New[string](10)
	for _, c := range []string{"sue", "bob", "sue", "bill", "bob", "sue"} {
		require.True(t, tally.Increment(c))
	}

	require.Equal(t, 3, tally.Len())
	require.Equal(t, uint32(3), tally.Get("sue"))
	require.Equal(t, uint32(0), tally.Get("alice"))
	require.Equal(t, []types.VoteCount[string]{
		{Candidate: "sue", Votes: 3},
		{Candidate: "bob", Votes: 2},
		{Candidate: "bill", Votes: 1},
	}, tally.Entries())
}

func Test_AtLeast(t *testing.T) {
	tally := New[string](10)
	for _, c := range []string{"a", "b", "b", "c", "a"} {
		tally.Increment(c)
	}

	require.Equal(t, []string{"a", "b"}, tally.AtLeast(2))
	require.Equal(t, []string{"a", "b", "c"}, tally.AtLeast(0))
	require.Empty(t, tally.AtLeast(3))
}

func Test_Minimum(t *testing.T) {
	tally := New[string](10)
	count, losers := tally.Minimum()
	require.Equal(t, uint32(0), count)
	require.Nil(t, losers)

	for _, c := range []string{"a", "b", "b", "c", "a", "d"} {
		tally.Increment(c)
	}

	count, losers = tally.Minimum()
	require.Equal(t, uint32(1), count)
	require.Equal(t, []string{"c", "d"}, losers)
}

func Test_IncrementLimit(t *testing.T) {
	tally := New[string](2)
	require.True(t, tally.Increment("a"))
	require.True(t, tally.Increment("a"))
	require.False(t, tally.Increment("a"))
	require.Equal(t, uint32(2), tally.Get("a"))

	zero := New[string](0)
	require.False(t, zero.Increment("a"))
	require.Equal(t, 0, zero.Len())
}
