package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// PingCommand reports whether the game API answers and what the jackpot stands at
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdPing,
		Description: "Check that the reels are up",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		if !client.Healthy(ctx) {
			respondError(s, i, MsgPingAPIDown)
			return
		}

		msg := MsgPingUp
		if snap, err := client.Jackpot(ctx); err != nil {
			slog.Warn("Ping could not read jackpot", "error", err)
		} else {
			msg = fmt.Sprintf("%s Jackpot: **%s**", MsgPingUp, formatMoney(snap.Current))
		}
		respondText(s, i, msg)
	}

	return cmd, handler
}
