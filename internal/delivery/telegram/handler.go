package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
	"github.com/samvidhan/constitution-bot/internal/quiz"
	"github.com/samvidhan/constitution-bot/internal/service"
)

type Catalog interface {
	Preamble() entities.Preamble
	Parts() []entities.Part
	PartByNumber(number string) (entities.Part, bool)
	Search(query string) []entities.Article
}

type ReviewService interface {
	RateArticle(ctx context.Context, chatID int64, key string, rating entities.Rating, now time.Time) (entities.ReviewRecord, error)
	DueSequence(ctx context.Context, chatID int64, now time.Time, partFilter string) ([]entities.Article, error)
	Reset(ctx context.Context, chatID int64) error
}

type QuizService interface {
	Questions() []entities.Question
	Resume(ctx context.Context, chatID int64) (quiz.State, error)
	Answer(ctx context.Context, chatID int64, state quiz.State, questionIndex, optionIndex int) (quiz.State, error)
	Advance(ctx context.Context, chatID int64, state quiz.State, dir quiz.Direction) (quiz.State, error)
	Jump(ctx context.Context, chatID int64, state quiz.State, index int) (quiz.State, error)
	Complete(ctx context.Context, chatID int64, state quiz.State, now time.Time) (quiz.State, error)
	CanComplete(state quiz.State) bool
	Reset(ctx context.Context, chatID int64) (quiz.State, error)
	History(ctx context.Context, chatID int64) ([]entities.QuizHistoryEntry, error)
	ClearHistory(ctx context.Context, chatID int64) error
}

type ProgressService interface {
	Summary(ctx context.Context, chatID int64, now time.Time) (*service.ProgressSummary, error)
}

type Handler struct {
	bot      *tgbotapi.BotAPI
	logger   *zap.Logger
	catalog  Catalog
	reviews  ReviewService
	quizzes  QuizService
	progress ProgressService
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	catalog Catalog,
	reviews ReviewService,
	quizzes QuizService,
	progress ProgressService,
) *Handler {
	return &Handler{
		bot:      bot,
		logger:   logger,
		catalog:  catalog,
		reviews:  reviews,
		quizzes:  quizzes,
		progress: progress,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("chat_id", update.CallbackQuery.Message.Chat.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		h.handleCommand(ctx, chatID, update.Message)
		return
	}

	// Any plain text is a search query, like the search box in the web version.
	if update.Message.Text != "" {
		h.handleSearch(chatID, update.Message.Text)
	}
}

func (h *Handler) handleCommand(ctx context.Context, chatID int64, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		msg := newHTMLMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildMenuKeyboard()
		h.send(msg)
	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))
	case "browse":
		h.handleBrowse(chatID, 0)
	case "search":
		h.handleSearch(chatID, message.CommandArguments())
	case "cards":
		h.handleCards(ctx, chatID, message.CommandArguments())
	case "quiz":
		h.handleQuiz(ctx, chatID)
	case "progress":
		h.handleProgress(ctx, chatID)
	case "history":
		h.handleHistory(ctx, chatID)
	case "reset":
		msg := newHTMLMessage(chatID, msgResetPrompt)
		msg.ReplyMarkup = buildResetKeyboard()
		h.send(msg)
	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}
