package types

// --- Tabulation Types ---

// MajorityMode decides which ballots count toward the majority
// denominator of a round.
type MajorityMode int

const (
	// CompleteMajority counts every ballot, exhausted or not
	CompleteMajority MajorityMode = iota
	// RemainingMajority counts only ballots that cast a vote this round
	RemainingMajority
)

// Outcome of a finished tabulation
const (
	WINNER = iota
	TIE
)

// ElectionResult is the terminal outcome of a tabulation. Tied holds the
// tied candidates in the order they first received a vote in the final
// round.
type ElectionResult[C comparable] struct {
	Outcome int
	Winner  C
	Tied    []C
}

// VoteCount is a single RoundTally entry
type VoteCount[C comparable] struct {
	Candidate C
	Votes     uint32
}

// RoundSummary describes one completed round
type RoundSummary[C comparable] struct {
	Round      int
	Tally      []VoteCount[C]
	NumVoters  uint32
	Threshold  uint32
	Eliminated []C
}

// ElectionError is the flat taxonomy of tabulation failures
type ElectionError int

const (
	// EmptyVoteCollection - no voters at all
	EmptyVoteCollection ElectionError = iota + 1
	// VotersNoVotes - voters exist but no ballot produced a vote this round
	VotersNoVotes
	// Overflow - a vote or voter counter left its representable range
	Overflow
)
