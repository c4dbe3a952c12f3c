package srs

import (
	"sort"
	"time"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
)

// SelectDueSequence ranks articles for a review session. Due articles (no
// record, or next review at or before now) come first, ordered by how long
// they have waited; articles without a record sort as if due since forever.
// Ties keep catalog order. Articles not yet due follow in catalog order, so a
// session never runs dry while there is anything left to browse.
//
// partFilter narrows the catalog to one part; empty means all parts. The
// records map is not modified.
func SelectDueSequence(
	articles []entities.Article,
	records map[string]entities.ReviewRecord,
	now time.Time,
	partFilter string,
) []entities.Article {
	nowMillis := now.UnixMilli()

	var due, notDue []entities.Article
	for _, a := range articles {
		if partFilter != "" && a.PartNumber != partFilter {
			continue
		}
		if nextReviewAt(records, a.Key) <= nowMillis {
			due = append(due, a)
		} else {
			notDue = append(notDue, a)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return nextReviewAt(records, due[i].Key) < nextReviewAt(records, due[j].Key)
	})

	return append(due, notDue...)
}

// CountDue reports how many articles are due at now, optionally narrowed to
// one part.
func CountDue(
	articles []entities.Article,
	records map[string]entities.ReviewRecord,
	now time.Time,
	partFilter string,
) int {
	nowMillis := now.UnixMilli()

	count := 0
	for _, a := range articles {
		if partFilter != "" && a.PartNumber != partFilter {
			continue
		}
		if nextReviewAt(records, a.Key) <= nowMillis {
			count++
		}
	}
	return count
}

func nextReviewAt(records map[string]entities.ReviewRecord, key string) int64 {
	if r, ok := records[key]; ok {
		return r.NextReviewAt
	}
	return 0
}
