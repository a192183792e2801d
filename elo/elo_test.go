/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package elo

import (
	"math"
	"testing"
)

func TestExpectedScore_EqualRatingsIsHalf(t *testing.T) {
	e := NewEngine()

	got := e.ExpectedScore(1000, 1000)
	if math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("ExpectedScore(1000,1000) = %v; want 0.5", got)
	}
}

func TestExpectedScore_SumsToOne(t *testing.T) {
	e := NewEngine()

	cases := []struct {
		name string
		ra   float64
		rb   float64
	}{
		{"equal", 1000, 1000},
		{"small gap", 1016, 984},
		{"large gap", 2400, 800},
		{"inverted", 850, 1900},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sum := e.ExpectedScore(c.ra, c.rb) + e.ExpectedScore(c.rb, c.ra)
			if math.Abs(sum-1.0) > 1e-12 {
				t.Errorf("expected scores sum to %v; want 1", sum)
			}
		})
	}
}

func TestUpdate_ZeroSum(t *testing.T) {
	e := NewEngine()

	cases := []struct {
		name  string
		ra    float64
		rb    float64
		score float64
	}{
		{"even win", 1000, 1000, 1},
		{"even loss", 1000, 1000, 0},
		{"favorite wins", 1200, 1000, 1},
		{"upset", 1000, 1600, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			newA, newB := e.Update(c.ra, c.rb, c.score)
			deltaA := newA - c.ra
			deltaB := newB - c.rb
			if math.Abs(deltaA+deltaB) > 1e-9 {
				t.Errorf("deltas %v and %v are not zero-sum", deltaA, deltaB)
			}
		})
	}
}

func TestUpdate_EvenMatch(t *testing.T) {
	e := NewEngine()

	newA, newB := e.Update(1000, 1000, 1)
	if math.Abs(newA-1016) > 1e-9 || math.Abs(newB-984) > 1e-9 {
		t.Fatalf("Update(1000,1000,1) = (%v, %v); want (1016, 984)", newA, newB)
	}
}

func TestComputeRatings_Deterministic(t *testing.T) {
	e := NewEngine()
	history := []Match{
		{"alice", "bob", 1},
		{"carol", "", 0},
		{"bob", "carol", 1},
		{"alice", "carol", 0},
	}

	first := e.ComputeRatings(history)
	second := e.ComputeRatings(history)
	if len(first) != len(second) {
		t.Fatalf("replay returned %d then %d players", len(first), len(second))
	}
	for name, r := range first {
		if second[name] != r {
			t.Errorf("player %v rated %v then %v across replays", name, r, second[name])
		}
	}
}

func TestComputeRatings_MarkersDoNotRate(t *testing.T) {
	e := NewEngine()
	history := []Match{
		{"alice", "", 0},
		{"bob", "", 0},
	}

	ratings := e.ComputeRatings(history)
	if len(ratings) != 2 {
		t.Fatalf("got %d players; want 2", len(ratings))
	}
	for name, r := range ratings {
		if r != e.InitialRating {
			t.Errorf("player %v rated %v; want initial %v", name, r, e.InitialRating)
		}
	}
}

func TestComputeRatings_FullHistoryReplay(t *testing.T) {
	// Three players: alice beats bob, then bob beats carol. bob's rating
	// entering the second game must reflect his earlier loss; a replay
	// scoped to bob and carol alone would start him back at 1000.
	e := NewEngine()
	history := []Match{
		{"alice", "bob", 1},
		{"bob", "carol", 1},
	}

	ratings := e.ComputeRatings(history)

	bobAfterLoss := 984.0
	expBob := e.ExpectedScore(bobAfterLoss, e.InitialRating)
	wantBob := bobAfterLoss + e.K*(1-expBob)
	wantCarol := e.InitialRating + e.K*(0-e.ExpectedScore(e.InitialRating, bobAfterLoss))

	if math.Abs(ratings["bob"]-wantBob) > 1e-9 {
		t.Errorf("bob rated %v; want %v", ratings["bob"], wantBob)
	}
	if math.Abs(ratings["carol"]-wantCarol) > 1e-9 {
		t.Errorf("carol rated %v; want %v", ratings["carol"], wantCarol)
	}
	if math.Abs(ratings["alice"]-1016) > 1e-9 {
		t.Errorf("alice rated %v; want 1016", ratings["alice"])
	}
}

func TestComputeRatings_UndoInverse(t *testing.T) {
	e := NewEngine()
	history := []Match{
		{"alice", "bob", 1},
		{"bob", "carol", 0},
	}

	before := e.ComputeRatings(history)
	appended := append(append([]Match{}, history...), Match{"carol", "alice", 1})
	after := e.ComputeRatings(appended[:len(appended)-1])

	for name, r := range before {
		if after[name] != r {
			t.Errorf("player %v rated %v after undo; want %v", name, after[name], r)
		}
	}
}

func TestRatingsFor_UnseenPlayersAtInitial(t *testing.T) {
	e := NewEngine()
	history := []Match{{"alice", "bob", 1}}

	ra, rb := e.RatingsFor(history, "carol", "dave")
	if ra != e.InitialRating || rb != e.InitialRating {
		t.Fatalf("got (%v, %v); want both at %v", ra, rb, e.InitialRating)
	}

	ra, rb = e.RatingsFor(history, "alice", "carol")
	if math.Abs(ra-1016) > 1e-9 {
		t.Errorf("alice rated %v; want 1016", ra)
	}
	if rb != e.InitialRating {
		t.Errorf("carol rated %v; want %v", rb, e.InitialRating)
	}
}
