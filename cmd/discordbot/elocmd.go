/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"fmt"
	"log"
	"math"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/eloladder/internal"
	"github.com/mikeb26/eloladder/ladder"
)

type EloSubCommand string

const (
	EloHelpCmd     EloSubCommand = "help"
	EloMatchCmd    EloSubCommand = "match"
	EloRankingCmd  EloSubCommand = "ranking"
	EloUndoCmd     EloSubCommand = "undo"
	EloRegisterCmd EloSubCommand = "register"
	EloStartCmd    EloSubCommand = "start"
)

type EloSubCmdHandler func(svc ladder.Service,
	opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse

var eloSubCmdHdlrs = map[EloSubCommand]EloSubCmdHandler{
	EloHelpCmd:     eloHelpCmdHandler,
	EloMatchCmd:    eloMatchCmdHandler,
	EloRankingCmd:  eloRankingCmdHandler,
	EloUndoCmd:     eloUndoCmdHandler,
	EloRegisterCmd: eloRegisterCmdHandler,
	EloStartCmd:    eloStartCmdHandler,
}

const eloHelpText = `/elo match winner:<name> loser:<name> - record a match
/elo ranking - show players sorted by descending rating
/elo undo - remove the last record from the match log
/elo register name:<name> - register a player without a match
/elo start competition:<name> - set the active competition

match, ranking, undo, and register accept an optional competition
argument; all subcommands accept broadcast to share the reply with the
channel.`

func newService() (ladder.Service, error) {
	configPath, err := internal.DefaultConfigPath()
	if err != nil {
		return ladder.Service{}, err
	}
	historyDir, err := internal.DefaultHistoryDir()
	if err != nil {
		return ladder.Service{}, err
	}
	return ladder.NewService(historyDir, configPath), nil
}

// eloCmdHandler dispatches /elo subcommands.
func eloCmdHandler(inter *discordgo.Interaction) *discordgo.InteractionResponse {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		resp.Data.Content = eloHelpText
		return resp
	}
	sub := EloSubCommand(data.Options[0].Name)
	hdlr, ok := eloSubCmdHdlrs[sub]
	if !ok {
		resp.Data.Content = fmt.Sprintf("unknown subcommand '%v'", sub)
		log.Printf("discordbot.elo: %v", resp.Data.Content)
		return resp
	}

	svc, err := newService()
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error initializing ladder: %v", err)
		log.Printf("discordbot.elo: %v", resp.Data.Content)
		return resp
	}

	opts := data.Options[0].Options
	resp = hdlr(svc, opts)
	if optBool(opts, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

func optString(opts []*discordgo.ApplicationCommandInteractionDataOption,
	name string) string {

	for _, opt := range opts {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func optBool(opts []*discordgo.ApplicationCommandInteractionDataOption,
	name string) bool {

	for _, opt := range opts {
		if opt.Name == name {
			return opt.BoolValue()
		}
	}
	return false
}

func ephemeralResp() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// competitionFor resolves the competition a subcommand operates on.
func competitionFor(svc ladder.Service,
	opts []*discordgo.ApplicationCommandInteractionDataOption) (string, error) {

	if comp := optString(opts, "competition"); comp != "" {
		return comp, nil
	}
	return svc.ActiveCompetition()
}

func eloHelpCmdHandler(svc ladder.Service,
	opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {

	resp := ephemeralResp()
	resp.Data.Content = eloHelpText
	return resp
}

// eloMatchCmdHandler handles the /elo match command to record a game
// between two players.
func eloMatchCmdHandler(svc ladder.Service,
	opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {

	resp := ephemeralResp()
	winner := optString(opts, "winner")
	loser := optString(opts, "loser")
	if winner == "" || loser == "" {
		resp.Data.Content = "Please provide both a winner and a loser."
		log.Printf("discordbot.match: %v", resp.Data.Content)
		return resp
	}

	competition, err := competitionFor(svc, opts)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading config: %v", err)
		log.Printf("discordbot.match: %v", resp.Data.Content)
		return resp
	}

	newWinner, newLoser, err := svc.RecordMatch(competition, winner, loser, 1)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error recording match: %v", err)
		log.Printf("discordbot.match: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("%v defeats %v in %v\n%v is now rated %v; %v is now rated %v",
		winner, loser, competition,
		winner, int(math.Round(newWinner)), loser, int(math.Round(newLoser)))

	return resp
}

// eloRankingCmdHandler handles the /elo ranking command to display the
// competition's current ranking.
func eloRankingCmdHandler(svc ladder.Service,
	opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {

	resp := ephemeralResp()
	competition, err := competitionFor(svc, opts)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading config: %v", err)
		log.Printf("discordbot.ranking: %v", resp.Data.Content)
		return resp
	}

	ranking, err := svc.Ranking(competition)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error computing ranking for %v: %v",
			competition, err)
		log.Printf("discordbot.ranking: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(ladder.BuildRankingOutput(ranking)))

	return resp
}

// eloUndoCmdHandler handles the /elo undo command to remove the last
// record from the competition's log.
func eloUndoCmdHandler(svc ladder.Service,
	opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {

	resp := ephemeralResp()
	competition, err := competitionFor(svc, opts)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading config: %v", err)
		log.Printf("discordbot.undo: %v", resp.Data.Content)
		return resp
	}

	if err := svc.UndoLastMatch(competition); err != nil {
		resp.Data.Content = fmt.Sprintf("Error undoing last match in %v: %v",
			competition, err)
		log.Printf("discordbot.undo: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("Removed the last record from %v", competition)

	return resp
}

// eloRegisterCmdHandler handles the /elo register command.
func eloRegisterCmdHandler(svc ladder.Service,
	opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {

	resp := ephemeralResp()
	name := optString(opts, "name")
	if name == "" {
		resp.Data.Content = "Please provide a player name."
		log.Printf("discordbot.register: %v", resp.Data.Content)
		return resp
	}

	competition, err := competitionFor(svc, opts)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading config: %v", err)
		log.Printf("discordbot.register: %v", resp.Data.Content)
		return resp
	}

	if err := svc.RegisterPlayer(competition, name); err != nil {
		resp.Data.Content = fmt.Sprintf("Error registering %v: %v", name, err)
		log.Printf("discordbot.register: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("Registered %v in %v", name, competition)

	return resp
}

// eloStartCmdHandler handles the /elo start command to switch the active
// competition.
func eloStartCmdHandler(svc ladder.Service,
	opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {

	resp := ephemeralResp()
	competition := optString(opts, "competition")
	if competition == "" {
		resp.Data.Content = "Please provide a competition name."
		log.Printf("discordbot.start: %v", resp.Data.Content)
		return resp
	}

	if err := svc.SetActiveCompetition(competition); err != nil {
		resp.Data.Content = fmt.Sprintf("Error setting active competition: %v", err)
		log.Printf("discordbot.start: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("%v is now the active competition", competition)

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
