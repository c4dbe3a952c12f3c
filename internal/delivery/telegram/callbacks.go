package telegram

import (
	"context"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
	"github.com/samvidhan/constitution-bot/internal/quiz"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	var (
		text  string
		kb    *tgbotapi.InlineKeyboardMarkup
		toast string
	)

	switch data.Action {
	case actionMenu:
		menuKb := buildMenuKeyboard()
		text, kb = msgWelcome, &menuKb
	case actionBrowse:
		text, kb = h.browseView(data)
	case actionPart:
		text, kb = h.partView(data)
	case actionCard:
		text, kb = h.cardCallbackView(ctx, chatID, data)
	case actionRate:
		text, kb, toast = h.rateCallbackView(ctx, chatID, data)
	case actionQuiz:
		text, kb, toast = h.quizCallbackView(ctx, chatID, data)
	case actionProgress:
		text, kb = h.progressView(ctx, chatID)
	case actionHistory:
		text = h.historyView(ctx, chatID)
	case actionReset:
		text, toast = h.resetView(ctx, chatID, data)
	default:
		return
	}

	if text != "" {
		edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, text)
		edit.ParseMode = tgbotapi.ModeHTML
		if kb != nil {
			edit.ReplyMarkup = kb
		}
		h.send(edit)
	}

	// Remove the user's "clock", optionally with a toast.
	answer := tgbotapi.NewCallback(cb.ID, toast)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

func (h *Handler) browseView(data callbackData) (string, *tgbotapi.InlineKeyboardMarkup) {
	if len(data.Params) != 1 {
		return msgInternalError, nil
	}
	page, err := strconv.Atoi(data.Params[0])
	if err != nil || page < 0 {
		h.logger.Warn("invalid browse callback", zap.String("data", data.Raw))
		return msgInternalError, nil
	}

	parts := h.catalog.Parts()
	text, totalPages := renderBrowsePage(h.catalog.Preamble(), parts, page)
	if text == "" {
		return msgInternalError, nil
	}

	kb := buildBrowseKeyboard(parts, page, totalPages)
	return text, &kb
}

func (h *Handler) partView(data callbackData) (string, *tgbotapi.InlineKeyboardMarkup) {
	if len(data.Params) != 1 {
		return msgInternalError, nil
	}

	part, ok := h.catalog.PartByNumber(data.Params[0])
	if !ok {
		h.logger.Warn("unknown part in callback", zap.String("data", data.Raw))
		return msgArticleUnavailable, nil
	}

	kb := buildPartKeyboard(part.Number)
	return renderPart(part), &kb
}

// cardView renders one flashcard of the chat's current due sequence. The
// sequence is recomputed from the stored records on every call, so rated
// cards fall out of the due prefix as soon as they are rescheduled.
func (h *Handler) cardView(
	ctx context.Context, chatID int64, filter string, index int, face string,
) (string, *tgbotapi.InlineKeyboardMarkup) {
	partFilter := ""
	if filter != allParts {
		partFilter = filter
	}

	seq, err := h.reviews.DueSequence(ctx, chatID, time.Now(), partFilter)
	if err != nil {
		h.logger.Error("failed to load due sequence", zap.Int64("chat_id", chatID), zap.Error(err))
		return msgCardsUnavailable, nil
	}
	if len(seq) == 0 {
		return msgNothingToReview, nil
	}

	if index < 0 {
		index = 0
	}
	if index >= len(seq) {
		index = len(seq) - 1
	}

	a := seq[index]
	if face == cardBack {
		kb := buildCardBackKeyboard(filter, index, len(seq), a.Key)
		return renderCardBack(a, index, len(seq)), &kb
	}

	kb := buildCardFrontKeyboard(filter, index, len(seq))
	return renderCardFront(a, index, len(seq)), &kb
}

func (h *Handler) cardCallbackView(
	ctx context.Context, chatID int64, data callbackData,
) (string, *tgbotapi.InlineKeyboardMarkup) {
	if len(data.Params) != 3 {
		return msgInternalError, nil
	}

	index, err := strconv.Atoi(data.Params[1])
	if err != nil {
		h.logger.Warn("invalid card callback", zap.String("data", data.Raw))
		return msgInternalError, nil
	}

	return h.cardView(ctx, chatID, data.Params[0], index, data.Params[2])
}

func (h *Handler) rateCallbackView(
	ctx context.Context, chatID int64, data callbackData,
) (string, *tgbotapi.InlineKeyboardMarkup, string) {
	if len(data.Params) != 4 {
		return msgInternalError, nil, ""
	}

	filter := data.Params[0]
	index, err := strconv.Atoi(data.Params[1])
	if err != nil {
		h.logger.Warn("invalid rate callback", zap.String("data", data.Raw))
		return msgInternalError, nil, ""
	}
	key := data.Params[2]

	rating, ok := parseRating(data.Params[3])
	if !ok {
		h.logger.Warn("invalid rating in callback", zap.String("data", data.Raw))
		return msgInternalError, nil, ""
	}

	now := time.Now()
	record, err := h.reviews.RateArticle(ctx, chatID, key, rating, now)
	if err != nil {
		h.logger.Error("failed to rate article",
			zap.Int64("chat_id", chatID),
			zap.String("key", key),
			zap.Error(err),
		)
		return msgCardsUnavailable, nil, ""
	}

	// Show the card now occupying this slot; the rated one has moved on.
	text, kb := h.cardView(ctx, chatID, filter, index, cardFront)
	return text, kb, "Rated " + rating.String() + " — " + formatDue(record.NextReviewAt, now)
}

func parseRating(s string) (entities.Rating, bool) {
	switch s {
	case entities.RatingAgain.String():
		return entities.RatingAgain, true
	case entities.RatingHard.String():
		return entities.RatingHard, true
	case entities.RatingGood.String():
		return entities.RatingGood, true
	case entities.RatingEasy.String():
		return entities.RatingEasy, true
	default:
		return 0, false
	}
}

func (h *Handler) quizCallbackView(
	ctx context.Context, chatID int64, data callbackData,
) (string, *tgbotapi.InlineKeyboardMarkup, string) {
	if len(data.Params) == 0 {
		return msgInternalError, nil, ""
	}

	state, err := h.quizzes.Resume(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to resume quiz", zap.Int64("chat_id", chatID), zap.Error(err))
		return msgQuizUnavailable, nil, ""
	}

	switch data.Params[0] {
	case quizStart:
		// Fall through to rendering the resumed (or fresh) state.

	case quizAnswer:
		if len(data.Params) != 3 {
			return msgInternalError, nil, ""
		}
		questionIndex, err1 := strconv.Atoi(data.Params[1])
		optionIndex, err2 := strconv.Atoi(data.Params[2])
		if err1 != nil || err2 != nil {
			h.logger.Warn("invalid quiz answer callback", zap.String("data", data.Raw))
			return msgInternalError, nil, ""
		}

		// Answering from an older message first moves the session there.
		if state.CurrentIndex != questionIndex {
			state, err = h.quizzes.Jump(ctx, chatID, state, questionIndex)
			if err != nil {
				break
			}
		}
		state, err = h.quizzes.Answer(ctx, chatID, state, questionIndex, optionIndex)

	case quizNav:
		if len(data.Params) != 2 {
			return msgInternalError, nil, ""
		}
		dir := quiz.Next
		if data.Params[1] == navPrev {
			dir = quiz.Previous
		}
		state, err = h.quizzes.Advance(ctx, chatID, state, dir)

	case quizJump:
		if len(data.Params) != 2 {
			return msgInternalError, nil, ""
		}
		index, convErr := strconv.Atoi(data.Params[1])
		if convErr != nil {
			h.logger.Warn("invalid quiz jump callback", zap.String("data", data.Raw))
			return msgInternalError, nil, ""
		}
		state, err = h.quizzes.Jump(ctx, chatID, state, index)

	case quizNavigator:
		kb := buildNavigatorKeyboard(state, len(h.quizzes.Questions()))
		return renderNavigator(state, len(h.quizzes.Questions())), &kb, ""

	case quizFinish:
		if !h.quizzes.CanComplete(state) {
			text, kb := h.questionView(state)
			return text, kb, "Answer every question before finishing."
		}
		state, err = h.quizzes.Complete(ctx, chatID, state, time.Now())
		if err == nil && state.Completed {
			kb := buildResultKeyboard()
			return renderResult(state, h.quizzes.Questions()), &kb, ""
		}

	case quizReset:
		state, err = h.quizzes.Reset(ctx, chatID)

	default:
		return msgInternalError, nil, ""
	}

	if err != nil {
		h.logger.Error("quiz operation failed", zap.Int64("chat_id", chatID), zap.Error(err))
		return msgQuizUnavailable, nil, ""
	}

	text, kb := h.questionView(state)
	return text, kb, ""
}

func (h *Handler) questionView(state quiz.State) (string, *tgbotapi.InlineKeyboardMarkup) {
	questions := h.quizzes.Questions()
	q := questions[state.CurrentIndex]

	kb := buildQuestionKeyboard(q, state, len(questions))
	return renderQuestion(q, state, len(questions)), &kb
}

func (h *Handler) progressView(ctx context.Context, chatID int64) (string, *tgbotapi.InlineKeyboardMarkup) {
	summary, err := h.progress.Summary(ctx, chatID, time.Now())
	if err != nil {
		h.logger.Error("failed to load progress", zap.Int64("chat_id", chatID), zap.Error(err))
		return msgProgressUnavailable, nil
	}

	kb := buildProgressKeyboard()
	return renderProgress(summary), &kb
}

func (h *Handler) historyView(ctx context.Context, chatID int64) string {
	entries, err := h.quizzes.History(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to load history", zap.Int64("chat_id", chatID), zap.Error(err))
		return msgProgressUnavailable
	}
	if len(entries) == 0 {
		return msgNoHistory
	}
	return renderHistory(entries)
}

func (h *Handler) resetView(ctx context.Context, chatID int64, data callbackData) (string, string) {
	if len(data.Params) != 1 {
		return msgInternalError, ""
	}

	switch data.Params[0] {
	case resetRecords:
		if err := h.reviews.Reset(ctx, chatID); err != nil {
			h.logger.Error("failed to reset review records", zap.Int64("chat_id", chatID), zap.Error(err))
			return msgInternalError, ""
		}
		return msgResetRecordsDone, "Review progress cleared"
	case resetHistory:
		if err := h.quizzes.ClearHistory(ctx, chatID); err != nil {
			h.logger.Error("failed to clear quiz history", zap.Int64("chat_id", chatID), zap.Error(err))
			return msgInternalError, ""
		}
		return msgResetHistoryDone, "Quiz history cleared"
	case resetCancel:
		return msgResetCancelled, ""
	default:
		return msgInternalError, ""
	}
}
