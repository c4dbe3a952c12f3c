package entities

// Question is one multiple-choice quiz question from the question bank.
type Question struct {
	Text         string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
	Explanation  string   `json:"explanation"`
}
