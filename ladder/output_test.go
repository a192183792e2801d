/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package ladder

import (
	"strings"
	"testing"

	"github.com/mikeb26/eloladder/elo"
)

func TestBuildRankingOutput(t *testing.T) {
	entries := []RankingEntry{
		{Name: "alexandra", Rating: 1016},
		{Name: "bob", Rating: 984},
	}

	got := BuildRankingOutput(entries)
	want := "alexandra 1016\nbob        984\n"
	if got != want {
		t.Errorf("BuildRankingOutput =\n%q\nwant\n%q", got, want)
	}
}

func TestBuildRankingOutput_Empty(t *testing.T) {
	got := BuildRankingOutput(nil)
	if !strings.Contains(got, "No players") {
		t.Errorf("BuildRankingOutput(nil) = %q", got)
	}
}

func TestBuildHistoryOutput(t *testing.T) {
	history := []elo.Match{
		{Player1: "carol"},
		{Player1: "alice", Player2: "bob", Result: 1},
		{Player1: "alice", Player2: "carol", Result: 0},
	}

	got := BuildHistoryOutput(history)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines; want header plus 3 rows:\n%v", len(lines), got)
	}
	if !strings.Contains(lines[1], "(registered)") {
		t.Errorf("marker row missing registration note: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "alice") {
		t.Errorf("winner of game 2 should be alice: %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "carol") {
		t.Errorf("winner of game 3 should be carol: %q", lines[3])
	}
}

func TestBuildSummariesOutput_MarksActive(t *testing.T) {
	summaries := []CompetitionSummary{
		{Name: "darts", Players: 3, Games: 5},
		{Name: "pool", Players: 2, Games: 1},
	}

	got := BuildSummariesOutput(summaries, "pool")
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "pool"):
			if !strings.HasSuffix(line, "(active)") {
				t.Errorf("active competition not marked: %q", line)
			}
		case strings.HasPrefix(line, "darts"):
			if strings.HasSuffix(line, "(active)") {
				t.Errorf("wrong competition marked active: %q", line)
			}
		}
	}
}
