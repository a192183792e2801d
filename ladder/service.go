/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package ladder

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/eloladder/elo"
)

// Service orchestrates the stores and the rating engine. One command
// invocation performs at most one read-modify-write cycle against one
// competition's log.
type Service struct {
	History HistoryStore
	Config  ConfigStore
	Engine  elo.Engine
}

// NewService wires a Service over the given storage locations with the
// standard rating constants.
func NewService(historyDir, configPath string) Service {
	return Service{
		History: HistoryStore{Dir: historyDir},
		Config:  ConfigStore{Path: configPath},
		Engine:  elo.NewEngine(),
	}
}

// RankingEntry is one row of a competition's ranking, with the rating
// rounded for display.
type RankingEntry struct {
	Name   string
	Rating int
}

// CompetitionSummary describes one competition's log at a glance.
type CompetitionSummary struct {
	Name    string
	Players int
	Games   int
}

func playerSeen(history []elo.Match, name string) bool {
	for _, m := range history {
		if m.Player1 == name || m.Player2 == name {
			return true
		}
	}
	return false
}

// RegisterPlayer adds a registration marker for name unless the name
// already appears anywhere in the competition's history. Registering an
// existing player is a no-op.
func (s Service) RegisterPlayer(competition, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	history, err := s.History.Load(competition)
	if err != nil {
		return err
	}
	if playerSeen(history, name) {
		return nil
	}

	history = append(history, elo.Match{Player1: name})

	return s.History.Save(competition, history)
}

// RecordMatch appends a contested game to the competition's log and
// returns both players' post-game ratings. result is name1's score:
// 1 if name1 won, 0 if name2 won. Players unseen in the history are
// registered as part of the same write.
func (s Service) RecordMatch(competition, name1, name2 string,
	result int) (float64, float64, error) {

	if err := ValidateName(name1); err != nil {
		return 0, 0, err
	}
	if err := ValidateName(name2); err != nil {
		return 0, 0, err
	}
	if name1 == name2 {
		return 0, 0, fmt.Errorf("players must be distinct; got %q twice", name1)
	}
	if result != 0 && result != 1 {
		return 0, 0, fmt.Errorf("result must be 0 or 1; got %d", result)
	}

	history, err := s.History.Load(competition)
	if err != nil {
		return 0, 0, err
	}

	// Presence is checked against the whole history as loaded, so a
	// player known only from markers or other opponents is not
	// re-registered.
	for _, name := range []string{name1, name2} {
		if !playerSeen(history, name) {
			history = append(history, elo.Match{Player1: name})
		}
	}

	ratingA, ratingB := s.Engine.RatingsFor(history, name1, name2)
	newRatingA, newRatingB := s.Engine.Update(ratingA, ratingB, float64(result))

	history = append(history, elo.Match{
		Player1: name1,
		Player2: name2,
		Result:  result,
	})
	if err := s.History.Save(competition, history); err != nil {
		return 0, 0, err
	}

	return newRatingA, newRatingB, nil
}

// UndoLastMatch removes the competition's final log record, marker or
// game. Replaying the shortened log yields exactly the ratings that held
// before that record was appended. Undoing an empty log is a no-op.
func (s Service) UndoLastMatch(competition string) error {
	history, err := s.History.Load(competition)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return nil
	}

	return s.History.Save(competition, history[:len(history)-1])
}

// Ranking derives every player's rating from the full log and returns
// rows sorted by descending rating, ties broken by name so the order is
// a deterministic total order.
func (s Service) Ranking(competition string) ([]RankingEntry, error) {
	history, err := s.History.Load(competition)
	if err != nil {
		return nil, err
	}

	ratings := s.Engine.ComputeRatings(history)

	entries := make([]RankingEntry, 0, len(ratings))
	names := make([]string, 0, len(ratings))
	for name := range ratings {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := ratings[names[i]], ratings[names[j]]
		if ri != rj {
			return ri > rj
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		entries = append(entries, RankingEntry{
			Name:   name,
			Rating: int(math.Round(ratings[name])),
		})
	}

	return entries, nil
}

// MatchHistory returns the competition's ordered log.
func (s Service) MatchHistory(competition string) ([]elo.Match, error) {
	return s.History.Load(competition)
}

// ActiveCompetition returns the configured default competition.
func (s Service) ActiveCompetition() (string, error) {
	cfg, err := s.Config.Load()
	if err != nil {
		return "", err
	}
	return cfg.DefaultCompetition(), nil
}

// SetActiveCompetition makes name the default competition for subsequent
// commands.
func (s Service) SetActiveCompetition(name string) error {
	if err := ValidateName(name); err != nil {
		return fmt.Errorf("invalid competition name: %w", err)
	}

	cfg, err := s.Config.Load()
	if err != nil {
		return err
	}
	cfg.SetDefaultCompetition(name)

	return s.Config.Save(cfg)
}

// Summaries loads every competition's log concurrently and reports
// per-competition player and game counts.
func (s Service) Summaries(ctx context.Context) ([]CompetitionSummary, error) {
	names, err := s.History.ListCompetitions()
	if err != nil {
		return nil, err
	}

	summaries := make([]CompetitionSummary, len(names))
	g, _ := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			history, err := s.History.Load(name)
			if err != nil {
				return err
			}
			games := 0
			for _, m := range history {
				if !m.IsMarker() {
					games++
				}
			}
			summaries[i] = CompetitionSummary{
				Name:    name,
				Players: len(s.Engine.ComputeRatings(history)),
				Games:   games,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summaries, nil
}
