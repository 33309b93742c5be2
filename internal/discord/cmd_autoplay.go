package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/handler"
)

// AutoplayCommand returns the autoplay command with start, stop and status subcommands
func AutoplayCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minOne := float64(1)

	cmd := &discordgo.ApplicationCommand{
		Name:        CmdAutoplay,
		Description: "Let the reels spin on their own",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubStart,
				Description: "Start an autoplay session",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        OptBet,
						Description: "Base bet per spin",
						Required:    true,
						MinValue:    &minOne,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        OptSpins,
						Description: "Number of spins",
						MinValue:    &minOne,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        OptStrategy,
						Description: "Betting strategy (default: fixed)",
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "Fixed", Value: string(domain.StrategyFixed)},
							{Name: "Martingale", Value: string(domain.StrategyMartingale)},
							{Name: "Reverse Martingale", Value: string(domain.StrategyReverseMartingale)},
							{Name: "Fibonacci", Value: string(domain.StrategyFibonacci)},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        OptMaxBet,
						Description: "Highest bet the strategy may place",
						MinValue:    &minOne,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        OptStopWin,
						Description: "Stop once net winnings reach this amount",
						MinValue:    &minOne,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        OptStopLoss,
						Description: "Stop once net losses reach this amount",
						MinValue:    &minOne,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        OptStopJackpot,
						Description: "Stop after a jackpot",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubStop,
				Description: "Stop your autoplay session",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubStatus,
				Description: "Show your autoplay session",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		userID := PlayerID(getInteractionUser(i).ID)
		options := getOptions(i)
		if len(options) == 0 {
			respondError(s, i, MsgGenericErrorPrefix+"missing subcommand")
			return
		}
		sub := options[0]

		var session *domain.AutoplaySession
		var err error
		switch sub.Name {
		case SubStart:
			if !ensureAccount(ctx, s, i, client, userID) {
				return
			}
			session, err = client.StartAutoplay(ctx, buildStartRequest(userID, sub.Options))
		case SubStop:
			session, err = client.StopAutoplay(ctx, userID)
		default:
			session, err = client.AutoplayState(ctx, userID)
		}
		if err != nil {
			slog.Error("Autoplay command failed", "error", err, "subcommand", sub.Name, "user_id", userID)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, buildAutoplayEmbed(session))
	}

	return cmd, handler
}

// buildStartRequest maps slash command options onto a start request
func buildStartRequest(userID string, opts []*discordgo.ApplicationCommandInteractionDataOption) handler.StartAutoplayRequest {
	m := optionMap(opts)
	req := handler.StartAutoplayRequest{
		UserID:   userID,
		Strategy: domain.StrategyConfig{Kind: domain.StrategyFixed},
	}
	if o, ok := m[OptBet]; ok {
		req.BaseBet = domain.Money(o.IntValue())
	}
	if o, ok := m[OptSpins]; ok {
		req.TotalSpins = int(o.IntValue())
	}
	if o, ok := m[OptStrategy]; ok {
		req.Strategy.Kind = domain.StrategyKind(o.StringValue())
	}
	if o, ok := m[OptMaxBet]; ok {
		req.MaxBet = domain.Money(o.IntValue())
	}
	if o, ok := m[OptStopWin]; ok {
		v := domain.Money(o.IntValue())
		req.StopConditions.TotalWinAmount = &v
	}
	if o, ok := m[OptStopLoss]; ok {
		v := domain.Money(o.IntValue())
		req.StopConditions.TotalLossAmount = &v
	}
	if o, ok := m[OptStopJackpot]; ok {
		req.StopConditions.StopOnJackpot = o.BoolValue()
	}
	return req
}

func buildAutoplayEmbed(session *domain.AutoplaySession) *discordgo.MessageEmbed {
	var desc string
	switch session.Status {
	case domain.AutoplayRunning:
		desc = "Autoplay is running."
	case domain.AutoplayStopping:
		desc = MsgAutoplayStopPending
	case domain.AutoplayStopped:
		desc = fmt.Sprintf("Autoplay stopped: **%s**", session.StopReason)
	default:
		desc = MsgAutoplayNotRunning
	}

	embed := createEmbed("🔁 Autoplay", desc, ColorInfo)
	if session.Status == domain.AutoplayIdle || session.Status == "" {
		return embed
	}

	strategy := session.Strategy.Kind
	if strategy == "" {
		strategy = domain.StrategyFixed
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		field("Spins", fmt.Sprintf("%d played, %d left", session.SpinsPlayed, session.RemainingSpins), true),
		field("Strategy", string(strategy), true),
		field("Next bet", formatMoney(session.CurrentBet), true),
		field("Net", formatSigned(session.TotalWon-session.TotalLost), true),
	}
	if session.LastSpin != nil {
		embed.Fields = append(embed.Fields, field("Last spin", formatReels(session.LastSpin.Outcome.Symbols[:]), false))
	}
	return embed
}
