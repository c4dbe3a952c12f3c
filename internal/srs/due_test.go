package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
)

func article(key, part string) entities.Article {
	return entities.Article{Key: key, PartNumber: part}
}

func record(key string, nextReviewAt int64) entities.ReviewRecord {
	r := entities.NewReviewRecord(key)
	r.NextReviewAt = nextReviewAt
	return r
}

func keys(articles []entities.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Key)
	}
	return out
}

func TestSelectDueSequenceOrdersByWaitTime(t *testing.T) {
	articles := []entities.Article{
		article("A", "I"),
		article("B", "I"),
		article("C", "II"),
	}
	records := map[string]entities.ReviewRecord{
		"A": record("A", 100),
		// B has no record: treated as due since forever.
		"C": record("C", 50),
	}

	got := SelectDueSequence(articles, records, time.UnixMilli(200), "")

	assert.Equal(t, []string{"B", "C", "A"}, keys(got))
}

func TestSelectDueSequenceAppendsNotDue(t *testing.T) {
	articles := []entities.Article{
		article("A", "I"),
		article("B", "I"),
		article("C", "II"),
	}
	records := map[string]entities.ReviewRecord{
		"A": record("A", 100),
		"C": record("C", 50),
	}

	// Only B and C are due at 75; A follows as browsable remainder.
	got := SelectDueSequence(articles, records, time.UnixMilli(75), "")

	assert.Equal(t, []string{"B", "C", "A"}, keys(got))
}

func TestSelectDueSequenceTiesKeepCatalogOrder(t *testing.T) {
	articles := []entities.Article{
		article("A", "I"),
		article("B", "I"),
		article("C", "I"),
	}
	records := map[string]entities.ReviewRecord{
		"A": record("A", 10),
		"B": record("B", 10),
		"C": record("C", 10),
	}

	got := SelectDueSequence(articles, records, time.UnixMilli(10), "")

	assert.Equal(t, []string{"A", "B", "C"}, keys(got))
}

func TestSelectDueSequenceBoundaryIsDue(t *testing.T) {
	articles := []entities.Article{article("A", "I")}
	records := map[string]entities.ReviewRecord{"A": record("A", 100)}

	got := SelectDueSequence(articles, records, time.UnixMilli(100), "")

	require.Len(t, got, 1)

	due := CountDue(articles, records, time.UnixMilli(100), "")
	assert.Equal(t, 1, due)

	due = CountDue(articles, records, time.UnixMilli(99), "")
	assert.Equal(t, 0, due)
}

func TestSelectDueSequencePartFilter(t *testing.T) {
	articles := []entities.Article{
		article("I-1", "I"),
		article("II-5", "II"),
		article("I-3", "I"),
	}

	got := SelectDueSequence(articles, nil, time.UnixMilli(0), "I")

	assert.Equal(t, []string{"I-1", "I-3"}, keys(got))
}

func TestSelectDueSequenceEmptyInputs(t *testing.T) {
	assert.Empty(t, SelectDueSequence(nil, nil, time.UnixMilli(0), ""))

	articles := []entities.Article{article("I-1", "I")}
	assert.Empty(t, SelectDueSequence(articles, nil, time.UnixMilli(0), "XXII"))
}

func TestSelectDueSequenceDoesNotMutateRecords(t *testing.T) {
	articles := []entities.Article{article("A", "I"), article("B", "I")}
	records := map[string]entities.ReviewRecord{"A": record("A", 10)}

	_ = SelectDueSequence(articles, records, time.UnixMilli(100), "")

	require.Len(t, records, 1)
	assert.Equal(t, int64(10), records["A"].NextReviewAt)
}
