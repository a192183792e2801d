/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/eloladder/internal"
	"github.com/mikeb26/eloladder/ladder"
	"github.com/mikeb26/eloladder/s3archive"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, svc ladder.Service, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":         handleHelp,
	"match":        handleMatch,
	"undo":         handleUndo,
	"ranking":      handleRanking,
	"register":     handleRegister,
	"start":        handleStart,
	"history":      handleHistory,
	"competitions": handleCompetitions,
	"backup":       handleBackup,
	"restore":      handleRestore,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	configPath, err := internal.DefaultConfigPath()
	if err != nil {
		log.Fatalf("Error resolving config path: %v", err)
	}
	historyDir, err := internal.DefaultHistoryDir()
	if err != nil {
		log.Fatalf("Error resolving history dir: %v", err)
	}
	svc := ladder.NewService(historyDir, configPath)

	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, svc, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, svc ladder.Service, args []string) {
	usage()
}

// activeCompetition resolves the competition a command operates on: the
// --competition override when given, else the configured default.
func activeCompetition(svc ladder.Service, override string) string {
	if override != "" {
		return override
	}
	comp, err := svc.ActiveCompetition()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	return comp
}

func handleMatch(ctx context.Context, svc ladder.Service, args []string) {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	comp := fs.String("competition", "",
		"Competition to record in (default is the active competition)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	rest := fs.Args()
	if len(rest) != 3 {
		fmt.Fprintln(os.Stderr, "usage: elo match <name1> <name2> <result(0|1)>")
		os.Exit(1)
	}
	result, err := strconv.Atoi(rest[2])
	if err != nil || (result != 0 && result != 1) {
		fmt.Fprintf(os.Stderr, "Result must be 0 or 1; got %q\n", rest[2])
		os.Exit(1)
	}

	competition := activeCompetition(svc, *comp)
	newRating1, newRating2, err := svc.RecordMatch(competition, rest[0],
		rest[1], result)
	if err != nil {
		log.Fatalf("Error recording match: %v", err)
	}

	fmt.Printf("%v is now rated %v\n", rest[0], int(math.Round(newRating1)))
	fmt.Printf("%v is now rated %v\n", rest[1], int(math.Round(newRating2)))
}

func handleUndo(ctx context.Context, svc ladder.Service, args []string) {
	fs := flag.NewFlagSet("undo", flag.ExitOnError)
	comp := fs.String("competition", "",
		"Competition to undo in (default is the active competition)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	competition := activeCompetition(svc, *comp)
	if err := svc.UndoLastMatch(competition); err != nil {
		log.Fatalf("Error undoing last match: %v", err)
	}

	fmt.Printf("Removed the last record from %v\n", competition)
}

func handleRanking(ctx context.Context, svc ladder.Service, args []string) {
	fs := flag.NewFlagSet("ranking", flag.ExitOnError)
	comp := fs.String("competition", "",
		"Competition to rank (default is the active competition)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	competition := activeCompetition(svc, *comp)
	ranking, err := svc.Ranking(competition)
	if err != nil {
		log.Fatalf("Error computing ranking: %v", err)
	}

	fmt.Print(ladder.BuildRankingOutput(ranking))
}

func handleRegister(ctx context.Context, svc ladder.Service, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	comp := fs.String("competition", "",
		"Competition to register in (default is the active competition)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "usage: elo register <name>")
		os.Exit(1)
	}

	competition := activeCompetition(svc, *comp)
	if err := svc.RegisterPlayer(competition, rest[0]); err != nil {
		log.Fatalf("Error registering player: %v", err)
	}

	fmt.Printf("Registered %v in %v\n", rest[0], competition)
}

func handleStart(ctx context.Context, svc ladder.Service, args []string) {
	fs := flag.NewFlagSet("start", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "usage: elo start <competition>")
		os.Exit(1)
	}

	if err := svc.SetActiveCompetition(rest[0]); err != nil {
		log.Fatalf("Error setting active competition: %v", err)
	}

	fmt.Printf("%v is now the active competition\n", rest[0])
}

func handleHistory(ctx context.Context, svc ladder.Service, args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	comp := fs.String("competition", "",
		"Competition to show (default is the active competition)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	competition := activeCompetition(svc, *comp)
	history, err := svc.MatchHistory(competition)
	if err != nil {
		log.Fatalf("Error loading history: %v", err)
	}

	fmt.Print(ladder.BuildHistoryOutput(history))
}

func handleCompetitions(ctx context.Context, svc ladder.Service, args []string) {
	fs := flag.NewFlagSet("competitions", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	summaries, err := svc.Summaries(ctx)
	if err != nil {
		log.Fatalf("Error summarizing competitions: %v", err)
	}
	active := activeCompetition(svc, "")

	fmt.Print(ladder.BuildSummariesOutput(summaries, active))
}

func handleBackup(ctx context.Context, svc ladder.Service, args []string) {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)
	comp := fs.String("competition", "",
		"Competition to back up (default is the active competition)")
	all := fs.Bool("all", false, "Back up every competition")
	bucket := fs.String("bucket", internal.ArchiveBucket(),
		"S3 bucket to store snapshots in")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	archive := s3archive.New(ctx, *bucket)
	if err := archive.Init(); err != nil {
		log.Fatalf("Error initializing archive: %v", err)
	}

	var competitions []string
	if *all {
		var err error
		competitions, err = svc.History.ListCompetitions()
		if err != nil {
			log.Fatalf("Error listing competitions: %v", err)
		}
		if len(competitions) == 0 {
			fmt.Println("No competitions to back up")
			return
		}
	} else {
		competitions = []string{activeCompetition(svc, *comp)}
	}

	taken := time.Now()
	keys := make([]string, len(competitions))
	g, _ := errgroup.WithContext(ctx)
	for i, name := range competitions {
		i, name := i, name
		g.Go(func() error {
			history, err := svc.History.Load(name)
			if err != nil {
				return err
			}
			key, err := archive.Put(name, ladder.EncodeHistory(history), taken)
			if err != nil {
				return err
			}
			keys[i] = key
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Error backing up: %v", err)
	}

	for i, name := range competitions {
		fmt.Printf("Backed up %v to %v\n", name, keys[i])
	}
}

func handleRestore(ctx context.Context, svc ladder.Service, args []string) {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	comp := fs.String("competition", "",
		"Competition to restore (default is the active competition)")
	bucket := fs.String("bucket", internal.ArchiveBucket(),
		"S3 bucket to read snapshots from")
	asOfArg := fs.String("asof", "",
		"Restore the newest snapshot at or before this date (default is the newest)")
	list := fs.Bool("list", false, "List available snapshots instead of restoring")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	competition := activeCompetition(svc, *comp)

	archive := s3archive.New(ctx, *bucket)
	if err := archive.Init(); err != nil {
		log.Fatalf("Error initializing archive: %v", err)
	}

	if *list {
		snapshots, err := archive.List(competition)
		if err != nil {
			log.Fatalf("Error listing snapshots: %v", err)
		}
		if len(snapshots) == 0 {
			fmt.Printf("No snapshots of %v\n", competition)
			return
		}
		for _, snap := range snapshots {
			fmt.Printf("%v  %v\n", snap.Taken.Format(time.RFC3339), snap.Key)
		}
		return
	}

	asOf, err := internal.ParseDateOrZero(*asOfArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse --asof %q: %v\n", *asOfArg, err)
		os.Exit(1)
	}

	snap, err := archive.LatestAsOf(competition, asOf)
	if err != nil {
		log.Fatalf("Error selecting snapshot: %v", err)
	}
	data, err := archive.Get(snap.Key)
	if err != nil {
		log.Fatalf("Error fetching snapshot %v: %v", snap.Key, err)
	}

	// validate the snapshot before replacing the local log
	history, err := ladder.ParseHistory(data)
	if err != nil {
		log.Fatalf("Snapshot %v is malformed: %v", snap.Key, err)
	}
	if err := svc.History.Save(competition, history); err != nil {
		log.Fatalf("Error writing restored history: %v", err)
	}

	fmt.Printf("Restored %v from %v (taken %v)\n", competition, snap.Key,
		snap.Taken.Format(time.RFC3339))
}
