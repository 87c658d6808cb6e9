// Package tabulator runs ranked-choice instant-runoff elections.
package tabulator

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.dedis.ch/rcir/tabulator/eliminatedset"
	"go.dedis.ch/rcir/tabulator/roundtally"
	"go.dedis.ch/rcir/types"
)

// Option configures a single RunElection call
type Option func(*config)

type config struct {
	limit    uint32
	logger   *zerolog.Logger
	observer any
}

// WithCounterLimit lowers the largest value a vote or voter counter may
// hold. Passing the limit fails the election with types.Overflow.
func WithCounterLimit(limit uint32) Option {
	return func(c *config) {
		c.limit = limit
	}
}

// WithLogger sets the logger used for per-round debug events
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRoundObserver registers a callback that receives every completed
// round, the terminal one included. It is ignored by elections whose
// candidate type differs from C.
func WithRoundObserver[C comparable](observer func(types.RoundSummary[C])) Option {
	return func(c *config) {
		c.observer = observer
	}
}

func newConfig(opts []Option) config {
	c := config{
		limit:  math.MaxUint32,
		logger: &log.Logger,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// RunElection tabulates the ballots and returns either a winner or a tie.
// It fails with one of the types.ElectionError values when there are no
// ballots, when no ballot yields a vote in some round, or when a counter
// would overflow. Ballots are read but never modified.
func RunElection[C comparable](ballots [][]C, mode types.MajorityMode, opts ...Option) (types.ElectionResult[C], error) {
	conf := newConfig(opts)

	if len(ballots) == 0 {
		return types.ElectionResult[C]{}, types.EmptyVoteCollection
	}

	observe, _ := conf.observer.(func(types.RoundSummary[C]))
	eliminated := eliminatedset.New[C]()

	for round := 1; ; round++ {
		tally, numVoters, err := countRound(ballots, eliminated, mode, conf.limit)
		if err != nil {
			return types.ElectionResult[C]{}, err
		}

		if tally.Len() == 0 {
			return types.ElectionResult[C]{}, types.VotersNoVotes
		}

		threshold, err := majorityThreshold(numVoters, conf.limit)
		if err != nil {
			return types.ElectionResult[C]{}, err
		}

		summary := types.RoundSummary[C]{
			Round:     round,
			Tally:     tally.Entries(),
			NumVoters: numVoters,
			Threshold: threshold,
		}

		winners := tally.AtLeast(threshold)
		if len(winners) == 0 {
			_, losers := tally.Minimum()
			eliminated.Add(losers...)
			summary.Eliminated = losers
		}

		conf.logger.Debug().
			Int("round", round).
			Uint32("voters", numVoters).
			Uint32("threshold", threshold).
			Int("candidates", tally.Len()).
			Int("eliminated", len(summary.Eliminated)).
			Msg("round tallied")

		if observe != nil {
			observe(summary)
		}

		switch len(winners) {
		case 0:
			continue
		case 1:
			return types.NewWinner(winners[0]), nil
		default:
			return types.NewTie(winners), nil
		}
	}
}

// countRound gives each ballot's vote to its first candidate that has not
// been eliminated and returns the tally together with the number of voters
// counted toward the majority.
func countRound[C comparable](ballots [][]C, eliminated eliminatedset.EliminatedSet[C],
	mode types.MajorityMode, limit uint32) (roundtally.RoundTally[C], uint32, error) {

	tally := roundtally.New[C](limit)
	numVoters := uint32(0)

	for _, ballot := range ballots {
		voted := false
		for _, candidate := range ballot {
			if eliminated.Contains(candidate) {
				continue
			}
			if !tally.Increment(candidate) {
				return nil, 0, types.Overflow
			}
			voted = true
			break
		}

		if mode == types.RemainingMajority && !voted {
			continue
		}

		if numVoters >= limit {
			return nil, 0, types.Overflow
		}
		numVoters++
	}

	return tally, numVoters, nil
}

// majorityThreshold returns (numVoters + 1) / 2, failing instead of
// wrapping when numVoters + 1 does not fit.
func majorityThreshold(numVoters, limit uint32) (uint32, error) {
	if numVoters >= limit {
		return 0, types.Overflow
	}
	return (numVoters + 1) / 2, nil
}
