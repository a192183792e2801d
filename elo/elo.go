/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package elo implements the classic Elo rating update and derives
// per-player ratings by replaying an ordered match log. Ratings are
// never stored; the log is the sole source of truth and every rating
// is reconstructed from it deterministically.
package elo

import (
	"math"
)

const (
	// DefaultInitialRating is assigned to any player with no rated games.
	DefaultInitialRating = 1000.0

	// DefaultKFactor controls the magnitude of rating change per game.
	DefaultKFactor = 32.0
)

// Engine computes Elo rating updates. The zero value is not useful;
// construct with NewEngine or set K and InitialRating explicitly so
// tests can inject their own constants.
type Engine struct {
	K             float64
	InitialRating float64
}

func NewEngine() Engine {
	return Engine{
		K:             DefaultKFactor,
		InitialRating: DefaultInitialRating,
	}
}

// ExpectedScore returns the probability of the player rated myRating
// scoring against an opponent rated oppRating.
func (e Engine) ExpectedScore(myRating, oppRating float64) float64 {
	// 1/(10^((opp-my)/400)+1) == 1/(exp(ln(10)*((opp-my)/400))+1)
	exp := math.Pow(10, (oppRating-myRating)/400.0)
	return 1.0 / (exp + 1.0)
}

// Update applies one game's result to both players' ratings and returns
// the new ratings. score is player a's actual score: 1 if a won, 0 if b
// won. The update is zero-sum: a's gain equals b's loss exactly.
func (e Engine) Update(ratingA, ratingB, score float64) (float64, float64) {
	expectedA := e.ExpectedScore(ratingA, ratingB)
	expectedB := e.ExpectedScore(ratingB, ratingA)

	newA := ratingA + e.K*(score-expectedA)
	newB := ratingB + e.K*((1.0-score)-expectedB)

	return newA, newB
}
