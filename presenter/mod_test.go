package presenter

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
	"go.dedis.ch/rcir/types"
	"golang.org/x/xerrors"
)

func init() {
	color.NoColor = true
	pterm.DisableStyling()
}

func Test_PresentWinner(t *testing.T) {
	buf := new(bytes.Buffer)

	code := Present(buf, types.NewWinner("sue"), nil)
	require.Equal(t, ExitWinner, code)
	require.Equal(t, "The winner was: sue\n", buf.String())
}

func Test_PresentTie(t *testing.T) {
	buf := new(bytes.Buffer)

	code := Present(buf, types.NewTie([]string{"sue", "bill"}), nil)
	require.Equal(t, ExitTie, code)
	require.Equal(t, "Tie between: sue, bill\n", buf.String())
}

func Test_PresentErrors(t *testing.T) {
	messages := map[error]string{}
	for _, err := range []error{types.EmptyVoteCollection, types.VotersNoVotes, types.Overflow} {
		buf := new(bytes.Buffer)

		code := Present(buf, types.ElectionResult[string]{}, err)
		require.Equal(t, ExitError, code)
		messages[err] = buf.String()
	}

	// every kind gets its own message
	require.Len(t, messages, 3)
	require.NotEqual(t, messages[types.VotersNoVotes], messages[types.EmptyVoteCollection])
	require.NotEqual(t, messages[types.Overflow], messages[types.VotersNoVotes])

	wrapped := xerrors.Errorf("reading: %w", types.Overflow)
	require.Equal(t, Describe(types.Overflow), Describe(wrapped))
	require.Contains(t, Describe(xerrors.New("boom")), "boom")
}

func Test_Rounds(t *testing.T) {
	buf := new(bytes.Buffer)

	err := Rounds(buf, []types.RoundSummary[string]{
		{
			Round: 1,
			Tally: []types.VoteCount[string]{
				{Candidate: "alice", Votes: 2},
				{Candidate: "bob", Votes: 1},
			},
			NumVoters:  3,
			Threshold:  2,
			Eliminated: nil,
		},
		{
			Round:      2,
			Tally:      []types.VoteCount[string]{{Candidate: "carol", Votes: 1}, {Candidate: "dave", Votes: 2}},
			NumVoters:  5,
			Threshold:  3,
			Eliminated: []string{"carol"},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Candidate")
	require.Contains(t, out, "majority")
	require.Contains(t, out, "eliminated")
	require.Contains(t, out, "leading")
	require.Contains(t, out, "3/5")
}
