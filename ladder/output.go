/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package ladder

import (
	"fmt"
	"strings"

	"github.com/mikeb26/eloladder/elo"
)

// BuildRankingOutput formats ranking rows into aligned columns: names
// left-justified to the longest name, ratings right-justified.
func BuildRankingOutput(entries []RankingEntry) string {
	if len(entries) == 0 {
		return "No players yet\n"
	}

	maxName := 0
	for _, e := range entries {
		if l := len(e.Name); l > maxName {
			maxName = l
		}
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%-*s %4d\n", maxName, e.Name, e.Rating))
	}

	return sb.String()
}

// BuildHistoryOutput formats a competition's log as an aligned table.
// Registration markers show as "(registered)" with no winner.
func BuildHistoryOutput(history []elo.Match) string {
	if len(history) == 0 {
		return "No matches yet\n"
	}

	type row struct{ num, p1, p2, winner string }
	rows := make([]row, 0, len(history))
	for idx, m := range history {
		r := row{
			num: fmt.Sprintf("%v.", idx+1),
			p1:  m.Player1,
		}
		if m.IsMarker() {
			r.p2 = "(registered)"
		} else {
			r.p2 = m.Player2
			if m.Result == 1 {
				r.winner = m.Player1
			} else {
				r.winner = m.Player2
			}
		}
		rows = append(rows, r)
	}

	maxNum, maxP1, maxP2 := len("No."), len("Player 1"), len("Player 2")
	for _, r := range rows {
		if l := len(r.num); l > maxNum {
			maxNum = l
		}
		if l := len(r.p1); l > maxP1 {
			maxP1 = l
		}
		if l := len(r.p2); l > maxP2 {
			maxP2 = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxNum, "No.",
		maxP1, "Player 1", maxP2, "Player 2", "Winner"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxNum, r.num,
			maxP1, r.p1, maxP2, r.p2, r.winner))
	}

	return sb.String()
}

// BuildSummariesOutput formats per-competition summaries as an aligned
// table, marking the active competition.
func BuildSummariesOutput(summaries []CompetitionSummary, active string) string {
	if len(summaries) == 0 {
		return "No competitions yet\n"
	}

	maxName := len("Competition")
	for _, s := range summaries {
		if l := len(s.Name); l > maxName {
			maxName = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %7s  %5s\n", maxName, "Competition",
		"Players", "Games"))
	for _, s := range summaries {
		marker := ""
		if s.Name == active {
			marker = " (active)"
		}
		sb.WriteString(fmt.Sprintf("%-*s  %7d  %5d%s\n", maxName, s.Name,
			s.Players, s.Games, marker))
	}

	return sb.String()
}
