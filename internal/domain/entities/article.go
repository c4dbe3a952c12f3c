package entities

// Article represents one key article of the Constitution as presented in the
// study catalog. Articles are flattened out of their parts at catalog load and
// never change afterwards.
type Article struct {
	Key        string // stable key, "<part number>-<article number>", e.g. "III-21A"
	PartNumber string // Roman numeral of the containing part
	PartTitle  string // title of the containing part
	Number     string `json:"num"` // article number, may carry a letter suffix ("21A")
	Title      string `json:"title"`
	Summary    string `json:"summary"`
}

// Part is one part of the Constitution with its key articles.
type Part struct {
	ID          int       `json:"id"`
	Number      string    `json:"number"`
	Title       string    `json:"title"`
	Articles    string    `json:"articles"` // covered article range, e.g. "12-35"
	Chapters    []Chapter `json:"chapters,omitempty"`
	KeyArticles []Article `json:"keyArticles"`
	Importance  string    `json:"importance"`
}

// Chapter is a named subdivision of a part, present only for a few parts.
type Chapter struct {
	Name     string `json:"name"`
	Articles string `json:"articles"`
}

// Preamble holds the preamble text and its keywords.
type Preamble struct {
	Text       string   `json:"text"`
	Keywords   []string `json:"keywords"`
	Importance string   `json:"importance"`
}
