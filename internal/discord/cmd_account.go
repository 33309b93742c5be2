package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// BalanceCommand returns the balance command definition and handler
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdBalance,
		Description: "Check your balance",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		userID := PlayerID(getInteractionUser(i).ID)
		if !ensureAccount(ctx, s, i, client, userID) {
			return
		}

		balance, err := client.Balance(ctx, userID)
		if err != nil {
			slog.Error("Failed to get balance", "error", err, "user_id", userID)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, createEmbed("👛 Balance", fmt.Sprintf("**%s**", formatMoney(balance)), ColorInfo))
	}

	return cmd, handler
}

// DailyCommand returns the daily bonus command definition and handler
func DailyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdDaily,
		Description: "Claim your daily login bonus",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		userID := PlayerID(getInteractionUser(i).ID)
		if !ensureAccount(ctx, s, i, client, userID) {
			return
		}

		result, err := client.ClaimDailyBonus(ctx, userID)
		if err != nil {
			slog.Error("Failed to claim daily bonus", "error", err, "user_id", userID)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, buildDailyEmbed(result))
	}

	return cmd, handler
}

func buildDailyEmbed(result *domain.DailyBonusResult) *discordgo.MessageEmbed {
	embed := createEmbed("🎁 Daily Bonus",
		fmt.Sprintf("You received **%s**!", formatMoney(result.Amount)), ColorBonus)
	embed.Fields = []*discordgo.MessageEmbedField{
		field("Login streak", fmt.Sprintf("Day %d", result.Streak), true),
		field("Balance", formatMoney(result.BalanceAfter), true),
	}
	return embed
}
