package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
	"github.com/samvidhan/constitution-bot/internal/quiz"
)

func buildMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Browse", buildBrowseCallback(0)),
			tgbotapi.NewInlineKeyboardButtonData("🗂 Flashcards", buildCardCallback(allParts, 0, cardFront)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ Quiz", buildQuizStartCallback()),
			tgbotapi.NewInlineKeyboardButtonData("📊 Progress", buildProgressCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 History", buildHistoryCallback()),
		),
	)
}

func buildBrowseKeyboard(parts []entities.Part, page, totalPages int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	start := page * partsPerPage
	end := start + partsPerPage
	if end > len(parts) {
		end = len(parts)
	}

	for _, p := range parts[start:end] {
		label := fmt.Sprintf("Part %s — %s", p.Number, p.Title)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildPartCallback(p.Number)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️", buildBrowseCallback(page-1)))
	}
	nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
		fmt.Sprintf("%d/%d", page+1, totalPages), buildBrowseCallback(page),
	))
	if page < totalPages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("➡️", buildBrowseCallback(page+1)))
	}
	rows = append(rows, nav)

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🏠 Menu", buildMenuCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildPartKeyboard(partNumber string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗂 Review this part", buildCardCallback(partNumber, 0, cardFront)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to parts", buildBrowseCallback(0)),
		),
	)
}

func buildCardFrontKeyboard(filter string, index, total int) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👆 Flip", buildCardCallback(filter, index, cardBack)),
		),
	}
	rows = append(rows, cardNavRow(filter, index, total))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildCardBackKeyboard(filter string, index, total int, key string) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Again", buildRateCallback(filter, index, key, entities.RatingAgain.String())),
			tgbotapi.NewInlineKeyboardButtonData("😓 Hard", buildRateCallback(filter, index, key, entities.RatingHard.String())),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🙂 Good", buildRateCallback(filter, index, key, entities.RatingGood.String())),
			tgbotapi.NewInlineKeyboardButtonData("😎 Easy", buildRateCallback(filter, index, key, entities.RatingEasy.String())),
		),
	}
	rows = append(rows, cardNavRow(filter, index, total))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func cardNavRow(filter string, index, total int) []tgbotapi.InlineKeyboardButton {
	var row []tgbotapi.InlineKeyboardButton
	if index > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️ Prev", buildCardCallback(filter, index-1, cardFront)))
	}
	if index < total-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ➡️", buildCardCallback(filter, index+1, cardFront)))
	}
	row = append(row, tgbotapi.NewInlineKeyboardButtonData("🏠 Menu", buildMenuCallback()))
	return row
}

func buildQuestionKeyboard(q entities.Question, state quiz.State, total int) tgbotapi.InlineKeyboardMarkup {
	answer, answered := state.Answers[state.CurrentIndex]

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, opt := range q.Options {
		label := fmt.Sprintf("%s. %s", optionLetter(i), opt)
		if answered {
			switch {
			case i == q.CorrectIndex:
				label = "✅ " + label
			case i == answer.SelectedIndex:
				label = "❌ " + label
			}
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizAnswerCallback(state.CurrentIndex, i)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if state.CurrentIndex > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️ Prev", buildQuizNavCallback(navPrev)))
	}
	switch {
	case state.CurrentIndex < total-1:
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ➡️", buildQuizNavCallback(navNext)))
	case len(state.Answers) == total:
		// Finish is only offered once every question is answered.
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("✓ Finish", buildQuizFinishCallback()))
	}
	rows = append(rows, nav)

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("📋 Navigator (%d/%d)", len(state.Answers), total),
			buildQuizNavigatorCallback(),
		),
		tgbotapi.NewInlineKeyboardButtonData("🔄 Reset", buildQuizResetCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildNavigatorKeyboard(state quiz.State, total int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for i := 0; i < total; i++ {
		label := fmt.Sprintf("%d", i+1)
		if a, ok := state.Answers[i]; ok {
			if a.IsCorrect {
				label = fmt.Sprintf("%d✅", i+1)
			} else {
				label = fmt.Sprintf("%d❌", i+1)
			}
		}
		if i == state.CurrentIndex {
			label = "· " + label + " ·"
		}

		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildQuizJumpCallback(i)))
		if len(row) == 5 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✕ Close", buildQuizJumpCallback(state.CurrentIndex)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Retry Quiz", buildQuizResetCallback()),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Menu", buildMenuCallback()),
		),
	)
}

func buildProgressKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗂 Review due articles", buildCardCallback(allParts, 0, cardFront)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Menu", buildMenuCallback()),
		),
	)
}

func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗂 Reset review progress", buildResetCallback(resetRecords)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 Reset quiz history", buildResetCallback(resetHistory)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✕ Cancel", buildResetCallback(resetCancel)),
		),
	)
}
