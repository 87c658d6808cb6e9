// Package prompt collects ballots interactively on a terminal.
package prompt

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/xerrors"
)

// Done is the option a voter picks to stop ranking
const Done = "(done)"

// AskFunc has the signature of survey.AskOne
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Source asks for a candidate list and then for one ballot per voter
type Source struct {
	ask AskFunc
}

// New returns a source using ask for every question. A nil ask falls back
// to survey.AskOne on the process terminal.
func New(ask AskFunc) Source {
	if ask == nil {
		ask = survey.AskOne
	}

	return Source{
		ask: ask,
	}
}

// Candidates asks for the comma separated candidate names
func (s Source) Candidates() ([]string, error) {
	var answer string
	err := s.ask(&survey.Input{
		Message: "Candidates (comma separated):",
	}, &answer, survey.WithValidator(survey.Required))
	if err != nil {
		return nil, xerrors.Errorf("failed to ask for candidates: %w", err)
	}

	candidates := splitNames(answer)
	if len(candidates) == 0 {
		return nil, xerrors.Errorf("no candidates in %q", answer)
	}

	return candidates, nil
}

// Ballot asks one voter to rank the candidates, one preference at a time.
// The voter may stop early, which leaves the remaining candidates unranked.
func (s Source) Ballot(voter int, candidates []string) ([]string, error) {
	remaining := make([]string, len(candidates))
	copy(remaining, candidates)

	ballot := make([]string, 0, len(candidates))
	for len(remaining) > 0 {
		var choice string
		err := s.ask(&survey.Select{
			Message: fmt.Sprintf("Voter %d, preference %d:", voter, len(ballot)+1),
			Options: append(append([]string{}, remaining...), Done),
		}, &choice)
		if err != nil {
			return nil, xerrors.Errorf("failed to ask voter %d: %w", voter, err)
		}

		if choice == Done {
			break
		}

		ballot = append(ballot, choice)
		remaining = remove(remaining, choice)
	}

	return ballot, nil
}

// Ballots runs the whole interview: candidates first, then voters until
// the operator declines to add another one.
func (s Source) Ballots() ([][]string, error) {
	candidates, err := s.Candidates()
	if err != nil {
		return nil, err
	}

	ballots := make([][]string, 0)
	for voter := 1; ; voter++ {
		ballot, err := s.Ballot(voter, candidates)
		if err != nil {
			return nil, err
		}
		ballots = append(ballots, ballot)

		more := false
		err = s.ask(&survey.Confirm{
			Message: "Add another voter?",
			Default: true,
		}, &more)
		if err != nil {
			return nil, xerrors.Errorf("failed to ask for another voter: %w", err)
		}

		if !more {
			return ballots, nil
		}
	}
}

func splitNames(answer string) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)

	for _, field := range strings.Split(answer, ",") {
		name := strings.TrimSpace(field)
		if name == "" || name == Done {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

func remove(list []string, element string) []string {
	for i, el := range list {
		if el == element {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
