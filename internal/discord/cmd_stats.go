package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// historyLimit caps the wins listed by /history
const historyLimit = 10

// StatsCommand returns the stats command definition and handler
func StatsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdStats,
		Description: "Show your reel statistics",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		user := getInteractionUser(i)
		stats, err := client.Stats(ctx, PlayerID(user.ID))
		if err != nil {
			slog.Error("Failed to get stats", "error", err, "user_id", user.ID)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, buildStatsEmbed(stats, user.Username))
	}

	return cmd, handler
}

func buildStatsEmbed(stats *domain.GameStats, username string) *discordgo.MessageEmbed {
	if stats.TotalSpins == 0 {
		return createEmbed("📊 Stats for "+username, "No spins yet. Try `/spin`!", ColorInfo)
	}

	embed := createEmbed("📊 Stats for "+username, "", ColorInfo)
	embed.Fields = []*discordgo.MessageEmbedField{
		field("Spins", fmt.Sprintf("%d", stats.TotalSpins), true),
		field("Wins / Losses", fmt.Sprintf("%d / %d", stats.Wins, stats.Losses), true),
		field("Jackpots", fmt.Sprintf("%d", stats.JackpotsHit), true),
		field("Wagered", formatMoney(stats.TotalBets), true),
		field("Paid out", formatMoney(stats.TotalPayout), true),
		field("RTP", fmt.Sprintf("%.1f%%", stats.RTP), true),
		field("Biggest win", formatMoney(stats.BiggestWin), true),
		field("Best streak", fmt.Sprintf("%d", stats.MaxWinStreak), true),
	}
	return embed
}

// HistoryCommand returns the history command definition and handler
func HistoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdHistory,
		Description: "Show your most recent wins",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		user := getInteractionUser(i)
		wins, err := client.History(ctx, PlayerID(user.ID))
		if err != nil {
			slog.Error("Failed to get history", "error", err, "user_id", user.ID)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, buildHistoryEmbed(wins))
	}

	return cmd, handler
}

func buildHistoryEmbed(wins []domain.WinRecord) *discordgo.MessageEmbed {
	if len(wins) == 0 {
		return createEmbed("🏆 Recent Wins", "No wins yet.", ColorInfo)
	}
	if len(wins) > historyLimit {
		wins = wins[:historyLimit]
	}

	var sb strings.Builder
	for _, w := range wins {
		marker := ""
		if w.IsJackpot {
			marker = " 🌟"
		}
		fmt.Fprintf(&sb, "%s **%s** (%s)%s <t:%d:R>\n",
			strings.Join(w.Symbols, " "), formatMoney(w.Amount), w.Kind, marker, w.Timestamp.Unix())
	}
	return createEmbed("🏆 Recent Wins", sb.String(), ColorWin)
}

// AchievementsCommand returns the achievements command definition and handler
func AchievementsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdAchievements,
		Description: "Show your achievements and their rewards",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		user := getInteractionUser(i)
		res, err := client.Achievements(ctx, PlayerID(user.ID))
		if err != nil {
			slog.Error("Failed to get achievements", "error", err, "user_id", user.ID)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, buildAchievementsEmbed(res.Achievements, res.Unlocked))
	}

	return cmd, handler
}

func buildAchievementsEmbed(progress []domain.AchievementProgress, unlocked int) *discordgo.MessageEmbed {
	title := fmt.Sprintf("🏅 Achievements (%d/%d)", unlocked, len(progress))
	if len(progress) == 0 {
		return createEmbed(title, "No achievements configured.", ColorInfo)
	}

	var sb strings.Builder
	for _, p := range progress {
		if p.Completed {
			fmt.Fprintf(&sb, "%s **%s** ✅ %s\n", p.Icon, p.Title, formatSigned(p.Reward))
			continue
		}
		fmt.Fprintf(&sb, "%s %s (%d/%d) %s\n", p.Icon, p.Title, p.Progress, p.Requirement, p.Description)
	}
	return createEmbed(title, sb.String(), ColorBonus)
}
