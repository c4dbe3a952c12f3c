package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
	"github.com/samvidhan/constitution-bot/internal/quiz"
	"github.com/samvidhan/constitution-bot/internal/service"
)

const (
	partsPerPage     = 5
	maxSearchResults = 8
)

func renderBrowsePage(preamble entities.Preamble, parts []entities.Part, page int) (string, int) {
	totalPages := (len(parts) + partsPerPage - 1) / partsPerPage
	if totalPages == 0 || page < 0 || page >= totalPages {
		return "", totalPages
	}

	var b strings.Builder
	if page == 0 {
		b.WriteString("<b>PREAMBLE</b>\n")
		b.WriteString(esc(preamble.Text))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("<b>Parts of the Constitution</b> (page %d of %d)\n", page+1, totalPages))
	b.WriteString("Pick a part to see its key articles.")

	return b.String(), totalPages
}

func renderPart(p entities.Part) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>PART %s — %s</b>\n", esc(p.Number), esc(p.Title)))
	b.WriteString(fmt.Sprintf("Articles %s · %s priority\n", esc(p.Articles), esc(p.Importance)))

	if len(p.Chapters) > 0 {
		names := make([]string, 0, len(p.Chapters))
		for _, ch := range p.Chapters {
			names = append(names, ch.Name)
		}
		b.WriteString("Chapters: " + esc(strings.Join(names, " | ")) + "\n")
	}

	b.WriteString("\n<b>Key Articles</b>\n")
	for _, a := range p.KeyArticles {
		b.WriteString(fmt.Sprintf("\n<b>Art. %s</b> — %s\n%s\n", esc(a.Number), esc(a.Title), esc(a.Summary)))
	}

	return b.String()
}

func renderCardFront(a entities.Article, index, total int) string {
	return fmt.Sprintf(
		"🗂 Card %d of %d\n\nPart %s\n\n<b>Article %s</b>\n\n%s",
		index+1, total,
		esc(a.PartNumber),
		esc(a.Number),
		esc(a.Title),
	)
}

func renderCardBack(a entities.Article, index, total int) string {
	return fmt.Sprintf(
		"🗂 Card %d of %d\n\n<b>Article %s — %s</b>\n\n<b>Summary</b>\n%s\n\nPart %s: %s\n\nHow well did you recall this?",
		index+1, total,
		esc(a.Number), esc(a.Title),
		esc(a.Summary),
		esc(a.PartNumber), esc(a.PartTitle),
	)
}

func renderSearchResults(query string, results []entities.Article) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔍 %d article(s) found for <b>%s</b>\n", len(results), esc(query)))

	shown := results
	if len(shown) > maxSearchResults {
		shown = shown[:maxSearchResults]
	}

	for _, a := range shown {
		b.WriteString(fmt.Sprintf(
			"\n<b>Article %s</b> (Part %s) — %s\n%s\n",
			esc(a.Number), esc(a.PartNumber), esc(a.Title), esc(a.Summary),
		))
	}

	if len(results) > maxSearchResults {
		b.WriteString(fmt.Sprintf("\n…and %d more. Narrow the query to see them.", len(results)-maxSearchResults))
	}

	return b.String()
}

func renderQuestion(q entities.Question, state quiz.State, total int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>Question %d of %d</b>\n\n", state.CurrentIndex+1, total))
	b.WriteString(esc(q.Text))

	if answer, ok := state.Answers[state.CurrentIndex]; ok {
		if answer.IsCorrect {
			b.WriteString("\n\n✅ <b>Correct!</b>\n")
		} else {
			b.WriteString("\n\n❌ <b>Incorrect</b>\n")
		}
		b.WriteString(esc(q.Explanation))
		b.WriteString("\n\nYou can pick another option to change your answer.")
	}

	b.WriteString(fmt.Sprintf("\n\nScore: %d / %d answered", state.Score, len(state.Answers)))

	return b.String()
}

func renderNavigator(state quiz.State, total int) string {
	return fmt.Sprintf(
		"<b>Question Navigator</b>\n\nAnswered %d of %d. Tap a question to jump to it.",
		len(state.Answers), total,
	)
}

func renderResult(state quiz.State, questions []entities.Question) string {
	total := len(questions)
	percentage := 0
	if total > 0 {
		percentage = state.Score * 100 / total
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		"%s <b>Quiz Complete!</b>\n\nScore: <b>%d / %d</b> (%d%%)\n\n<b>Review</b>\n",
		scoreEmoji(state.Score, total), state.Score, total, percentage,
	))

	for i, q := range questions {
		answer := state.Answers[i]
		if answer.IsCorrect {
			b.WriteString(fmt.Sprintf("\n✅ Q%d: %s\n", i+1, esc(q.Text)))
		} else {
			b.WriteString(fmt.Sprintf("\n❌ Q%d: %s\n%s\n", i+1, esc(q.Text), esc(q.Explanation)))
		}
	}

	return b.String()
}

// scoreEmoji mirrors the result-screen tiers of the web version.
func scoreEmoji(score, total int) string {
	if total == 0 {
		return "📚"
	}

	percentage := score * 100 / total
	switch {
	case percentage >= 90:
		return "🏆"
	case percentage >= 75:
		return "🌟"
	case percentage >= 60:
		return "👍"
	case percentage >= 50:
		return "😊"
	default:
		return "📚"
	}
}

func renderProgress(s *service.ProgressSummary) string {
	var b strings.Builder
	b.WriteString("📊 <b>Your Progress</b>\n\n")
	b.WriteString(buildProgressBar(s.Learned, s.TotalArticles, 20))
	b.WriteString(fmt.Sprintf("\n\n✅ Learned: %d / %d (%.1f%%)\n", s.Learned, s.TotalArticles, s.Percentage))
	b.WriteString(fmt.Sprintf("📖 In progress: %d\n", s.InProgress))
	b.WriteString(fmt.Sprintf("⏳ Not started: %d\n", s.NotStarted))
	b.WriteString(fmt.Sprintf("🔥 Due for review now: %d\n", s.DueNow))

	if s.QuizRuns > 0 {
		b.WriteString(fmt.Sprintf("\n❓ Quizzes completed: %d\n", s.QuizRuns))
		b.WriteString(fmt.Sprintf("🎯 Quiz accuracy: %.1f%%\n", s.QuizAccuracy))
		b.WriteString(fmt.Sprintf("🕐 Last quiz: %s\n", s.LastQuizAt.Format("2 Jan 2006")))
	}

	return b.String()
}

func renderHistory(entries []entities.QuizHistoryEntry) string {
	var b strings.Builder
	b.WriteString("📈 <b>Quiz History</b>\n")

	// Newest first.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		percentage := 0
		if e.TotalQuestions > 0 {
			percentage = e.Score * 100 / e.TotalQuestions
		}
		b.WriteString(fmt.Sprintf(
			"\n%s — <b>%d / %d</b> (%d%%)\n",
			e.CompletedAt.Format("2 Jan 2006 15:04"), e.Score, e.TotalQuestions, percentage,
		))
	}

	return b.String()
}

func formatDue(nextReviewAt int64, now time.Time) string {
	if nextReviewAt <= now.UnixMilli() {
		return "due now"
	}
	d := time.UnixMilli(nextReviewAt).Sub(now)
	days := int((d.Hours() + 23) / 24)
	if days <= 1 {
		return "due tomorrow"
	}
	return fmt.Sprintf("due in %d days", days)
}
