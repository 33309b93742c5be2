package slots

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

var printer = message.NewPrinter(language.English)

// FormatMessage builds the user-facing result line with grouped digits
func FormatMessage(r *domain.SpinResult) string {
	var msg string
	switch r.Outcome.Kind {
	case domain.MatchJackpot:
		msg = printer.Sprintf(MsgTemplateJackpot, int64(r.Payout))
	case domain.MatchTriple:
		msg = printer.Sprintf(MsgTemplateTriple, int64(r.Payout))
	case domain.MatchPair:
		msg = printer.Sprintf(MsgTemplatePair, int64(r.Payout))
	default:
		return printer.Sprintf(MsgTemplateLoss, int64(r.Bet))
	}

	if r.StreakMultiplier > 1 {
		msg += printer.Sprintf(MsgTemplateStreak, r.ConsecutiveWins, r.StreakMultiplier)
	}
	return msg
}
