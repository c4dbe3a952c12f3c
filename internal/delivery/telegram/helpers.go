package telegram

import (
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// newHTMLMessage creates a message with HTML parse mode enabled.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// send delivers any chattable and logs delivery failures.
func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send message", zap.Error(err))
	}
}

// esc escapes text for HTML parse mode.
func esc(s string) string {
	return html.EscapeString(s)
}

// buildProgressBar renders a text progress bar of the given width.
func buildProgressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}

	filled := done * width / total
	if filled > width {
		filled = width
	}

	return strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
}

// optionLetter returns "A", "B", ... for an option index.
func optionLetter(i int) string {
	return string(rune('A' + i))
}
