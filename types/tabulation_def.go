package types

import "time"

// Tabulation is a finished tabulation kept by the HTTP service
type Tabulation struct {
	ID      string
	Mode    MajorityMode
	Ballots [][]string
	Created time.Time

	// Err is one of the ElectionError values when the election failed,
	// Result is meaningless in that case
	Result ElectionResult[string]
	Err    error
	Rounds []RoundSummary[string]
}
