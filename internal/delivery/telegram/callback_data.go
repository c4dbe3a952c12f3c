package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionBrowse   = "browse"
	actionPart     = "part"
	actionCard     = "card"
	actionRate     = "rate"
	actionQuiz     = "quiz"
	actionProgress = "progress"
	actionHistory  = "history"
	actionReset    = "reset"
	actionMenu     = "menu"
)

// Quiz sub-actions.
const (
	quizStart     = "start"
	quizAnswer    = "ans"
	quizNav       = "nav"
	quizJump      = "jump"
	quizNavigator = "map"
	quizFinish    = "finish"
	quizReset     = "reset"
)

// Navigation directions inside quiz callbacks.
const (
	navNext = "next"
	navPrev = "prev"
)

// Card faces.
const (
	cardFront = "front"
	cardBack  = "back"
)

// Reset sub-actions.
const (
	resetRecords = "records"
	resetHistory = "history"
	resetCancel  = "cancel"
)

// allParts marks an unfiltered flashcard sequence in callback data, since an
// empty parameter would produce an ambiguous "::" encoding.
const allParts = "all"

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildBrowseCallback(page int) string {
	return callbackData{
		Action: actionBrowse,
		Params: []string{strconv.Itoa(page)},
	}.encode()
}

func buildPartCallback(number string) string {
	return callbackData{
		Action: actionPart,
		Params: []string{number},
	}.encode()
}

// buildCardCallback builds callback data for showing a flashcard face.
// filter is a part number or allParts.
func buildCardCallback(filter string, index int, face string) string {
	return callbackData{
		Action: actionCard,
		Params: []string{filter, strconv.Itoa(index), face},
	}.encode()
}

// buildRateCallback builds callback data for rating the article behind a
// flashcard. The article key never contains ':', so it is safe as a parameter.
func buildRateCallback(filter string, index int, key string, rating string) string {
	return callbackData{
		Action: actionRate,
		Params: []string{filter, strconv.Itoa(index), key, rating},
	}.encode()
}

func buildQuizStartCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizStart}}.encode()
}

func buildQuizAnswerCallback(questionIndex, optionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAnswer, strconv.Itoa(questionIndex), strconv.Itoa(optionIndex)},
	}.encode()
}

func buildQuizNavCallback(direction string) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNav, direction},
	}.encode()
}

func buildQuizJumpCallback(index int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizJump, strconv.Itoa(index)},
	}.encode()
}

func buildQuizNavigatorCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizNavigator}}.encode()
}

func buildQuizFinishCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizFinish}}.encode()
}

func buildQuizResetCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizReset}}.encode()
}

func buildProgressCallback() string {
	return actionProgress
}

func buildHistoryCallback() string {
	return actionHistory
}

func buildResetCallback(target string) string {
	return callbackData{Action: actionReset, Params: []string{target}}.encode()
}

func buildMenuCallback() string {
	return actionMenu
}
