package types

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

// NewWinner returns a result with a single winning candidate.
func NewWinner[C comparable](winner C) ElectionResult[C] {
	return ElectionResult[C]{
		Outcome: WINNER,
		Winner:  winner,
	}
}

// NewTie returns a result for two or more tied candidates.
func NewTie[C comparable](tied []C) ElectionResult[C] {
	return ElectionResult[C]{
		Outcome: TIE,
		Tied:    tied,
	}
}

// IsTie reports whether no single winner emerged
func (r ElectionResult[C]) IsTie() bool {
	return r.Outcome == TIE
}

// String implements fmt.Stringer
func (r ElectionResult[C]) String() string {
	if r.IsTie() {
		names := make([]string, 0, len(r.Tied))
		for _, c := range r.Tied {
			names = append(names, fmt.Sprint(c))
		}
		return fmt.Sprintf("Tie: %s", strings.Join(names, ", "))
	}

	return fmt.Sprintf("Winner: %v", r.Winner)
}

// ---

// String implements fmt.Stringer
func (m MajorityMode) String() string {
	switch m {
	case CompleteMajority:
		return "complete"
	case RemainingMajority:
		return "remaining"
	default:
		return fmt.Sprintf("MajorityMode(%d)", int(m))
	}
}

// ParseMajorityMode is the inverse of MajorityMode.String
func ParseMajorityMode(s string) (MajorityMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "complete":
		return CompleteMajority, nil
	case "remaining":
		return RemainingMajority, nil
	default:
		return 0, xerrors.Errorf("unknown majority mode %q", s)
	}
}

// ---

// Error implements error.
func (e ElectionError) Error() string {
	switch e {
	case EmptyVoteCollection:
		return "vote collection is empty"
	case VotersNoVotes:
		return "there were voters, but no votes"
	case Overflow:
		return "an integer overflow occurred"
	default:
		return fmt.Sprintf("election error %d", int(e))
	}
}

// ---

// Leader returns the candidate with the most votes in the round, first
// seen wins on equal counts. ok is false for an empty tally.
func (s RoundSummary[C]) Leader() (leader VoteCount[C], ok bool) {
	for _, vc := range s.Tally {
		if !ok || vc.Votes > leader.Votes {
			leader = vc
			ok = true
		}
	}
	return leader, ok
}
