// Package csvsource reads ballots from comma separated text, one voter
// per line, highest preference first.
package csvsource

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"golang.org/x/xerrors"
)

// MaxLineSize is the longest ballot line Read accepts
const MaxLineSize = 16 * 1024 * 1024

// Read parses one ballot per line. Fields are trimmed and empty fields are
// dropped, so a blank line yields an empty ballot that still counts as a
// voter. Duplicate names on a line are kept as is.
func Read(r io.Reader) ([][]string, error) {
	ballots := make([][]string, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		ballot, err := parseLine(scanner.Text())
		if err != nil {
			return nil, xerrors.Errorf("line %d: %w", lineNo, err)
		}
		ballots = append(ballots, ballot)
	}

	err := scanner.Err()
	if err != nil {
		return nil, xerrors.Errorf("failed to read ballots: %w", err)
	}

	return ballots, nil
}

// ReadFile reads the ballots stored at path
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("failed to open ballot file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

func parseLine(line string) ([]string, error) {
	ballot := make([]string, 0)
	if strings.TrimSpace(line) == "" {
		return ballot, nil
	}

	// a single line goes through encoding/csv so quoted names may hold commas
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	record, err := reader.Read()
	if err != nil {
		return nil, err
	}

	for _, field := range record {
		name := strings.TrimSpace(field)
		if name == "" {
			continue
		}
		ballot = append(ballot, name)
	}

	return ballot, nil
}
