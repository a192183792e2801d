/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"
)

// Credentials come from the environment so no key material lives in the
// repository.
const (
	BotTokenEnvVar  = "DISCORD_BOT_TOKEN"
	PublicKeyEnvVar = "DISCORD_PUBLIC_KEY"
	AppIdEnvVar     = "DISCORD_APP_ID"

	// EloCmdIdEnvVar holds the registered command id once the slash
	// command has been created; when unset the bot registers it at
	// startup and logs the id.
	EloCmdIdEnvVar = "DISCORD_ELO_CMD_ID"
)

var client *discordgo.Session
var botPubKey ed25519.PublicKey
var botAppId string

type TopLevelCommand string

const EloCmd TopLevelCommand = "elo"

type CmdHandler func(i *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	EloCmd: eloCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(&inter)
		}
	} else {
		log.Printf("discordbot.int: unimplemented interaction type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(rawResp)
	if err != nil {
		log.Printf("discordbot.int: failed to write resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func init() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
}

func initFromEnv() error {
	pubKeyText := os.Getenv(PublicKeyEnvVar)
	if pubKeyText == "" {
		return fmt.Errorf("%v must be set", PublicKeyEnvVar)
	}
	pubKeyBytes, err := hex.DecodeString(pubKeyText)
	if err != nil {
		return fmt.Errorf("failed to parse public key: %w", err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)

	botToken := os.Getenv(BotTokenEnvVar)
	if botToken == "" {
		return fmt.Errorf("%v must be set", BotTokenEnvVar)
	}
	client, err = discordgo.New("Bot " + botToken)
	if err != nil {
		return fmt.Errorf("failed to initialize discord client: %w", err)
	}

	botAppId = os.Getenv(AppIdEnvVar)
	if botAppId == "" {
		return fmt.Errorf("%v must be set", AppIdEnvVar)
	}

	return nil
}

func registerSlashCommands() {
	compOpt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "competition",
		Description: "Competition to operate on (default is the active competition)",
		Required:    false,
	}
	broadcastOpt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}

	eloCmd := &discordgo.ApplicationCommand{
		Name:        string(EloCmd),
		Description: "Elo ladder commands; try /elo help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(EloHelpCmd),
				Description: "Show usage for elo",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(EloMatchCmd),
				Description: "Record a match between two players",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "winner",
						Description: "Name of the winning player",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "loser",
						Description: "Name of the losing player",
						Required:    true,
					},
					compOpt,
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(EloRankingCmd),
				Description: "Show players sorted by descending rating",
				Options: []*discordgo.ApplicationCommandOption{
					compOpt,
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(EloUndoCmd),
				Description: "Remove the last record from the match log",
				Options: []*discordgo.ApplicationCommandOption{
					compOpt,
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(EloRegisterCmd),
				Description: "Register a player without recording a match",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Name of the player to register",
						Required:    true,
					},
					compOpt,
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(EloStartCmd),
				Description: "Set the active competition",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "competition",
						Description: "Name of the competition to activate",
						Required:    true,
					},
					broadcastOpt,
				},
			},
		},
	}

	eloCmdId := os.Getenv(EloCmdIdEnvVar)
	if eloCmdId == "" {
		cmd, err := client.ApplicationCommandCreate(botAppId, "", eloCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to register %v: %v", eloCmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: registered %v(cmdID:%v); set %v to skip re-registration",
			cmd.Name, cmd.ID, EloCmdIdEnvVar)
	} else {
		cmd, err := client.ApplicationCommandEdit(botAppId, "", eloCmdId, eloCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to update %v: %v", eloCmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: updated %v(cmdID:%v)", cmd.Name, cmd.ID)
	}
}

func main() {
	if err := initFromEnv(); err != nil {
		log.Fatalf("discordbot.main: %v", err)
	}

	go registerSlashCommands()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("discordbot.main: starting server on %v:8080", hostname)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}
}
