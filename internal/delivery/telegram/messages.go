// messages.go contains message templates for Telegram.

package telegram

const msgWelcome = `⚖️ <b>Constitution of India</b>

Master the Constitution for the UPSC Civil Services Examination.

📚 /browse — parts and key articles
🔍 /search — find an article by number or keyword
🗂 /cards — flashcards with spaced repetition
❓ /quiz — UPSC-style multiple-choice quiz
📊 /progress — your learning progress
📈 /history — past quiz results

Send any text to search the articles directly.`

const msgHelp = `<b>Commands</b>

/browse — browse parts with key articles and summaries
/search &lt;query&gt; — search by article number, title or keyword
/cards [part] — review flashcards; articles you struggle with come back sooner
/quiz — take the quiz; you can leave and resume any time
/progress — learned, in-progress and due counts
/history — completed quiz runs
/reset — reset review progress or quiz history

While reviewing a flashcard, rate your recall:
🔁 Again — forgot, start over
😓 Hard — recalled with difficulty
🙂 Good — recalled
😎 Easy — recalled instantly`

// Error messages.
const (
	msgArticleUnavailable  = "Could not load that article. Please try again."
	msgProgressUnavailable = "Could not load your progress. Please try again."
	msgQuizUnavailable     = "Could not load the quiz. Please try again."
	msgCardsUnavailable    = "Could not load the flashcards. Please try again."
	msgNothingToReview     = "No articles match that part. Try /cards without a filter."
	msgNoSearchResults     = "No articles found. Try an article number (e.g. 21) or a keyword (e.g. equality)."
	msgNoHistory           = "No completed quizzes yet. Start one with /quiz."
	msgInternalError       = "Something went wrong. Please try again."
	msgUnknownCommand      = "Unknown command. See /help for the list of commands."
)

const (
	msgResetPrompt = `What do you want to reset?

🗂 Review progress — all flashcard scheduling starts over
📈 Quiz history — past quiz results are deleted

The in-progress quiz (if any) is reset from the quiz screen.`
	msgResetRecordsDone = "Review progress cleared. Every article is new again."
	msgResetHistoryDone = "Quiz history cleared."
	msgResetCancelled   = "Nothing was reset."
)
