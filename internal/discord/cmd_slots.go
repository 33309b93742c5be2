package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// SpinCommand returns the spin command definition and handler
func SpinCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minValue := float64(1)

	cmd := &discordgo.ApplicationCommand{
		Name:        CmdSpin,
		Description: "Spin the reels",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptBet,
				Description: "Amount to bet",
				Required:    true,
				MinValue:    &minValue,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		user := getInteractionUser(i)
		userID := PlayerID(user.ID)
		bet := domain.Money(getOptions(i)[0].IntValue())

		if !ensureAccount(ctx, s, i, client, userID) {
			return
		}

		result, err := client.Spin(ctx, userID, bet)
		if err != nil {
			slog.Error("Failed to spin", "error", err, "user_id", userID)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, buildSpinEmbed(result, user.Username))
	}

	return cmd, handler
}

// buildSpinEmbed creates an embed for one spin
func buildSpinEmbed(result *domain.SpinResult, username string) *discordgo.MessageEmbed {
	var title string
	var color int
	switch {
	case result.JackpotHit:
		title, color = "🌟 JACKPOT! 🌟", ColorJackpot
	case result.IsWin:
		title, color = "🎰 Winner! 🎰", ColorWin
	default:
		title, color = "🎰 Reels 🎰", ColorLoss
	}

	embed := createEmbed(title, result.Message, color)
	embed.Fields = []*discordgo.MessageEmbedField{
		field("Reels", formatReels(result.Outcome.Symbols[:]), false),
		field("Bet", formatMoney(result.Bet), true),
		field("Payout", formatMoney(result.Payout), true),
		field("Balance", formatMoney(result.BalanceAfter), true),
	}
	if result.StreakMultiplier > 1 {
		embed.Fields = append(embed.Fields,
			field("Streak", fmt.Sprintf("%d wins (x%.1f)", result.ConsecutiveWins, result.StreakMultiplier), true))
	}
	if result.JackpotHit {
		embed.Fields = append(embed.Fields, field("Jackpot", formatMoney(result.JackpotAmount), true))
	}
	embed.Footer.Text = fmt.Sprintf("%s • Player: %s", FooterText, username)
	return embed
}

// JackpotCommand returns the jackpot command definition and handler
func JackpotCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdJackpot,
		Description: "Show the progressive jackpot",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		snap, err := client.Jackpot(ctx)
		if err != nil {
			slog.Error("Failed to get jackpot", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, buildJackpotEmbed(snap))
	}

	return cmd, handler
}

func buildJackpotEmbed(snap *domain.JackpotSnapshot) *discordgo.MessageEmbed {
	embed := createEmbed("💰 Progressive Jackpot", fmt.Sprintf("**%s**", formatMoney(snap.Current)), ColorJackpot)
	embed.Fields = []*discordgo.MessageEmbedField{
		field("Hits", fmt.Sprintf("%d", snap.HitCount), true),
		field("Resets to", formatMoney(snap.Base), true),
	}
	if snap.Max > 0 {
		embed.Fields = append(embed.Fields, field("Cap", formatMoney(snap.Max), true))
	}
	if snap.LastHitAt != nil {
		embed.Fields = append(embed.Fields, field("Last hit", fmt.Sprintf("<t:%d:R>", snap.LastHitAt.Unix()), true))
	}
	return embed
}

// PaytableCommand returns the paytable command definition and handler
func PaytableCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdPaytable,
		Description: "Show symbols and payouts",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		table, err := client.Paytable(ctx)
		if err != nil {
			slog.Error("Failed to get paytable", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, buildPaytableEmbed(table))
	}

	return cmd, handler
}

func buildPaytableEmbed(table *domain.Paytable) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, sym := range table.Symbols {
		line := fmt.Sprintf("%s x3 → **%.1fx**", symbolGlyph(sym), sym.PayoutMultiplier)
		switch {
		case sym.IsJackpot:
			line += " + jackpot"
		case sym.IsWildcard:
			line += " (wild)"
		}
		sb.WriteString(line + "\n")
	}
	fmt.Fprintf(&sb, "Any pair → **%.1fx**\n", table.PairMultiplier)
	if table.WildcardBonus > 0 {
		fmt.Fprintf(&sb, "Each wild in a win → **+%.1fx**\n", table.WildcardBonus)
	}

	embed := createEmbed("📜 Paytable", sb.String(), ColorInfo)
	embed.Fields = []*discordgo.MessageEmbedField{
		field("Bets", fmt.Sprintf("%s – %s", formatMoney(table.MinBet), formatMoney(table.MaxBet)), false),
	}
	if len(table.StreakTiers) > 0 {
		tiers := make([]string, len(table.StreakTiers))
		for i, t := range table.StreakTiers {
			tiers[i] = fmt.Sprintf("%d wins → x%.1f", t.MinStreak, t.Multiplier)
		}
		embed.Fields = append(embed.Fields, field("Streaks", strings.Join(tiers, "\n"), false))
	}
	return embed
}
