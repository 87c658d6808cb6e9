package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func Test_ParseMajorityMode(t *testing.T) {
	for _, mode := range []MajorityMode{CompleteMajority, RemainingMajority} {
		parsed, err := ParseMajorityMode(mode.String())
		require.NoError(t, err)
		require.Equal(t, mode, parsed)
	}

	parsed, err := ParseMajorityMode(" Remaining ")
	require.NoError(t, err)
	require.Equal(t, RemainingMajority, parsed)

	_, err = ParseMajorityMode("absolute")
	require.Error(t, err)

	_, err = ParseMajorityMode("")
	require.Error(t, err)
}

func Test_ElectionErrorIs(t *testing.T) {
	wrapped := xerrors.Errorf("tabulating: %w", Overflow)
	require.True(t, errors.Is(wrapped, Overflow))
	require.False(t, errors.Is(wrapped, VotersNoVotes))
	require.Equal(t, "vote collection is empty", EmptyVoteCollection.Error())
}

func Test_ResultString(t *testing.T) {
	require.Equal(t, "Winner: sue", NewWinner("sue").String())
	require.Equal(t, "Tie: 1, 2", NewTie([]int{1, 2}).String())
}

func Test_Leader(t *testing.T) {
	s := RoundSummary[string]{Tally: []VoteCount[string]{
		{Candidate: "a", Votes: 1},
		{Candidate: "b", Votes: 3},
		{Candidate: "c", Votes: 3},
	}}

	leader, ok := s.Leader()
	require.True(t, ok)
	require.Equal(t, "b", leader.Candidate)

	_, ok = RoundSummary[string]{}.Leader()
	require.False(t, ok)
}
