/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package ladder

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mikeb26/eloladder/elo"
)

const historyFileSuffix = ".txt"

// HistoryStore reads and writes per-competition match logs, one plain
// text file per competition under Dir.
type HistoryStore struct {
	Dir string
}

// Path returns the log file path for the named competition.
func (s HistoryStore) Path(competition string) string {
	return filepath.Join(s.Dir, competition+historyFileSuffix)
}

// Load returns the competition's ordered match log. A missing log file is
// an empty competition, not an error. A malformed line fails the whole
// load; nothing is modified on disk.
func (s HistoryStore) Load(competition string) ([]elo.Match, error) {
	data, err := os.ReadFile(s.Path(competition))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to load %v history: %w", competition, err)
	}

	history, err := ParseHistory(data)
	if err != nil {
		return nil, fmt.Errorf("unable to load %v history: %w", competition, err)
	}

	return history, nil
}

// Save rewrites the competition's full log, creating the history
// directory if needed. Given no concurrent writer, Save(Load()) leaves
// disk content unchanged.
func (s HistoryStore) Save(competition string, history []elo.Match) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("unable to create history dir: %w", err)
	}

	if err := os.WriteFile(s.Path(competition), EncodeHistory(history), 0644); err != nil {
		return fmt.Errorf("unable to save %v history: %w", competition, err)
	}

	return nil
}

// ListCompetitions returns the names of all competitions with a log file,
// sorted. A missing history directory means no competitions yet.
func (s HistoryStore) ListCompetitions() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to list competitions: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), historyFileSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), historyFileSuffix))
	}
	sort.Strings(names)

	return names, nil
}
