package telegram

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

func (h *Handler) handleBrowse(chatID int64, page int) {
	parts := h.catalog.Parts()

	text, totalPages := renderBrowsePage(h.catalog.Preamble(), parts, page)
	if text == "" {
		h.send(newHTMLMessage(chatID, msgInternalError))
		return
	}

	msg := newHTMLMessage(chatID, text)
	msg.ReplyMarkup = buildBrowseKeyboard(parts, page, totalPages)
	h.send(msg)
}

func (h *Handler) handleSearch(chatID int64, query string) {
	query = strings.TrimSpace(query)

	results := h.catalog.Search(query)
	if len(results) == 0 {
		h.send(newHTMLMessage(chatID, msgNoSearchResults))
		return
	}

	h.send(newHTMLMessage(chatID, renderSearchResults(query, results)))
}

// handleCards starts a flashcard session over the due sequence, optionally
// narrowed to one part ("/cards III").
func (h *Handler) handleCards(ctx context.Context, chatID int64, partArg string) {
	filter := allParts
	if p := strings.ToUpper(strings.TrimSpace(partArg)); p != "" {
		filter = p
	}

	text, kb := h.cardView(ctx, chatID, filter, 0, cardFront)

	msg := newHTMLMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	h.send(msg)
}

func (h *Handler) handleQuiz(ctx context.Context, chatID int64) {
	state, err := h.quizzes.Resume(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to resume quiz", zap.Int64("chat_id", chatID), zap.Error(err))
		h.send(newHTMLMessage(chatID, msgQuizUnavailable))
		return
	}

	questions := h.quizzes.Questions()
	q := questions[state.CurrentIndex]

	msg := newHTMLMessage(chatID, renderQuestion(q, state, len(questions)))
	msg.ReplyMarkup = buildQuestionKeyboard(q, state, len(questions))
	h.send(msg)
}

func (h *Handler) handleProgress(ctx context.Context, chatID int64) {
	summary, err := h.progress.Summary(ctx, chatID, time.Now())
	if err != nil {
		h.logger.Error("failed to load progress", zap.Int64("chat_id", chatID), zap.Error(err))
		h.send(newHTMLMessage(chatID, msgProgressUnavailable))
		return
	}

	msg := newHTMLMessage(chatID, renderProgress(summary))
	msg.ReplyMarkup = buildProgressKeyboard()
	h.send(msg)
}

func (h *Handler) handleHistory(ctx context.Context, chatID int64) {
	entries, err := h.quizzes.History(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to load history", zap.Int64("chat_id", chatID), zap.Error(err))
		h.send(newHTMLMessage(chatID, msgProgressUnavailable))
		return
	}

	if len(entries) == 0 {
		h.send(newHTMLMessage(chatID, msgNoHistory))
		return
	}

	h.send(newHTMLMessage(chatID, renderHistory(entries)))
}
