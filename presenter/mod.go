// Package presenter renders tabulation outcomes on a console.
package presenter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"go.dedis.ch/rcir/types"
)

// Exit codes returned by Present
const (
	ExitWinner = 0
	ExitError  = 1
	ExitTie    = 2
)

var (
	winnerColor = color.New(color.FgGreen, color.Bold)
	tieColor    = color.New(color.FgYellow, color.Bold)
	errorColor  = color.New(color.FgRed)
)

// Present writes the outcome of an election and returns the exit code the
// process should finish with.
func Present[C comparable](w io.Writer, res types.ElectionResult[C], err error) int {
	if err != nil {
		errorColor.Fprintln(w, Describe(err))
		return ExitError
	}

	if res.IsTie() {
		tieColor.Fprintf(w, "Tie between: %s\n", join(res.Tied))
		return ExitTie
	}

	winnerColor.Fprintf(w, "The winner was: %v\n", res.Winner)
	return ExitWinner
}

// Describe turns an election error into a message for the user
func Describe(err error) string {
	switch {
	case errors.Is(err, types.EmptyVoteCollection):
		return "No ballots were cast."
	case errors.Is(err, types.VotersNoVotes):
		return "There were voters, but none of their ballots named a remaining candidate."
	case errors.Is(err, types.Overflow):
		return "Too many ballots to count."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// Rounds renders one table row per candidate and round
func Rounds[C comparable](w io.Writer, rounds []types.RoundSummary[C]) error {
	data := pterm.TableData{
		{"Round", "Candidate", "Votes", "Threshold", "Status"},
	}

	for _, r := range rounds {
		leader, _ := r.Leader()
		eliminated := make(map[C]struct{}, len(r.Eliminated))
		for _, c := range r.Eliminated {
			eliminated[c] = struct{}{}
		}

		for _, vc := range r.Tally {
			status := ""
			if _, ok := eliminated[vc.Candidate]; ok {
				status = pterm.LightRed("eliminated")
			} else if vc.Votes >= r.Threshold {
				status = pterm.LightGreen("majority")
			} else if vc.Candidate == leader.Candidate {
				status = pterm.LightCyan("leading")
			}

			data = append(data, []string{
				fmt.Sprint(r.Round),
				fmt.Sprint(vc.Candidate),
				fmt.Sprint(vc.Votes),
				fmt.Sprintf("%d/%d", r.Threshold, r.NumVoters),
				status,
			})
		}
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, table)
	return err
}

func join[C comparable](candidates []C) string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, fmt.Sprint(c))
	}
	return strings.Join(names, ", ")
}
