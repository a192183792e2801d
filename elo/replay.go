/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package elo

// Match is one entry of a competition's ordered log. A Match with an
// empty Player2 is a registration marker: it contributes Player1 to the
// player set but never changes any rating. Otherwise Result is player1's
// score (1 = player1 won, 0 = player2 won); draws are not representable.
type Match struct {
	Player1 string
	Player2 string
	Result  int
}

// IsMarker reports whether m is a registration marker rather than a
// contested game.
func (m Match) IsMarker() bool {
	return m.Player2 == ""
}

// ComputeRatings derives the rating of every player appearing anywhere in
// history by replaying it in order from the initial rating. Ratings are a
// shared state across the whole competition, so the replay always covers
// all players and all games, not just a pair of interest. The same history
// always yields the same mapping.
func (e Engine) ComputeRatings(history []Match) map[string]float64 {
	ratings := make(map[string]float64)
	for _, m := range history {
		ratings[m.Player1] = e.InitialRating
		if !m.IsMarker() {
			ratings[m.Player2] = e.InitialRating
		}
	}

	for _, m := range history {
		if m.IsMarker() {
			continue
		}
		ratings[m.Player1], ratings[m.Player2] =
			e.Update(ratings[m.Player1], ratings[m.Player2], float64(m.Result))
	}

	return ratings
}

// RatingsFor returns the current ratings of the two named players after
// replaying history. A player absent from history is at the initial rating.
func (e Engine) RatingsFor(history []Match, nameA, nameB string) (float64, float64) {
	ratings := e.ComputeRatings(history)

	ratingA, ok := ratings[nameA]
	if !ok {
		ratingA = e.InitialRating
	}
	ratingB, ok := ratings[nameB]
	if !ok {
		ratingB = e.InitialRating
	}

	return ratingA, ratingB
}
