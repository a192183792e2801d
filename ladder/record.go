/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package ladder persists competition match logs and derives rankings
// from them. Each competition owns one append-only log file; every
// mutation is a full read-modify-write of that file and every rating
// shown to the user is recomputed from it.
package ladder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mikeb26/eloladder/elo"
)

// FieldSep joins the three fields of one log line: player1,player2,result.
// Names containing the separator are rejected before they can reach disk.
const FieldSep = ","

// ParseRecord decodes a single log line into a match record. An empty
// second field denotes a registration marker.
func ParseRecord(line string) (elo.Match, error) {
	fields := strings.Split(line, FieldSep)
	if len(fields) != 3 {
		return elo.Match{}, fmt.Errorf("record %q: want 3 fields, got %d",
			line, len(fields))
	}

	result, err := strconv.Atoi(fields[2])
	if err != nil {
		return elo.Match{}, fmt.Errorf("record %q: bad result: %w", line, err)
	}
	if result != 0 && result != 1 {
		return elo.Match{}, fmt.Errorf("record %q: result must be 0 or 1", line)
	}

	return elo.Match{
		Player1: fields[0],
		Player2: fields[1],
		Result:  result,
	}, nil
}

// EncodeRecord renders a match record as one log line (no trailing newline).
func EncodeRecord(m elo.Match) string {
	return strings.Join([]string{
		m.Player1, m.Player2, strconv.Itoa(m.Result),
	}, FieldSep)
}

// ParseHistory decodes a whole log file into an ordered match history.
// Blank lines are ignored; any malformed line fails the whole parse.
func ParseHistory(data []byte) ([]elo.Match, error) {
	var history []elo.Match
	for idx, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		m, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", idx+1, err)
		}
		history = append(history, m)
	}

	return history, nil
}

// EncodeHistory renders an ordered match history as full log file
// content, one record per line.
func EncodeHistory(history []elo.Match) []byte {
	var sb strings.Builder
	for _, m := range history {
		sb.WriteString(EncodeRecord(m))
		sb.WriteString("\n")
	}

	return []byte(sb.String())
}

// ValidateName rejects player names that cannot round-trip through the
// log encoding.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("player name must not be empty")
	}
	if strings.Contains(name, FieldSep) {
		return fmt.Errorf("player name %q must not contain %q", name, FieldSep)
	}
	return nil
}
