package discord

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

var printer = message.NewPrinter(language.English)

// formatMoney renders an amount with grouped digits, e.g. "12,500 credits"
func formatMoney(m domain.Money) string {
	return printer.Sprintf("%d credits", int64(m))
}

func formatSigned(m domain.Money) string {
	if m > 0 {
		return "+" + formatMoney(m)
	}
	return formatMoney(m)
}

// formatReels joins the drawn symbols' display glyphs
func formatReels(symbols []domain.Symbol) string {
	parts := make([]string, len(symbols))
	for i, sym := range symbols {
		parts[i] = symbolGlyph(sym)
	}
	return strings.Join(parts, " | ")
}

func symbolGlyph(sym domain.Symbol) string {
	if sym.Display != "" {
		return sym.Display
	}
	return sym.Key
}
