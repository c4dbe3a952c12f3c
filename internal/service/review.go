package service

import (
	"context"
	"fmt"
	"time"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
	"github.com/samvidhan/constitution-bot/internal/kvstore"
	"github.com/samvidhan/constitution-bot/internal/review"
	"github.com/samvidhan/constitution-bot/internal/srs"
)

type Catalog interface {
	Articles() []entities.Article
	GetByKey(key string) (entities.Article, error)
	Parts() []entities.Part
	Preamble() entities.Preamble
	Search(query string) []entities.Article
}

// ReviewService drives spaced-repetition review of the article catalog.
// Each chat gets its own record store, namespaced inside the shared
// key-value store.
type ReviewService struct {
	catalog Catalog
	kv      kvstore.Store
}

func NewReviewService(catalog Catalog, kv kvstore.Store) *ReviewService {
	return &ReviewService{
		catalog: catalog,
		kv:      kv,
	}
}

func (s *ReviewService) recordsFor(chatID int64) *review.Store {
	return review.NewStore(chatStore(s.kv, chatID))
}

// RateArticle applies one rating to the article's scheduling record and
// persists the updated mapping. Rating a key the catalog does not contain
// leaves the stored mapping untouched.
func (s *ReviewService) RateArticle(
	ctx context.Context, chatID int64, key string, rating entities.Rating, now time.Time,
) (entities.ReviewRecord, error) {
	if _, err := s.catalog.GetByKey(key); err != nil {
		return entities.ReviewRecord{}, err
	}

	store := s.recordsFor(chatID)

	records, err := store.Load(ctx)
	if err != nil {
		return entities.ReviewRecord{}, err
	}

	prior, ok := records[key]
	if !ok {
		prior = entities.NewReviewRecord(key)
	}

	next := srs.Review(prior, rating, now)
	records[key] = next

	if err := store.Save(ctx, records); err != nil {
		return entities.ReviewRecord{}, fmt.Errorf("rate article %s: %w", key, err)
	}

	return next, nil
}

// DueSequence returns the review order for a session: due articles first,
// longest-waiting first, then the rest in catalog order. partFilter narrows
// the catalog to one part; empty means all.
func (s *ReviewService) DueSequence(
	ctx context.Context, chatID int64, now time.Time, partFilter string,
) ([]entities.Article, error) {
	records, err := s.recordsFor(chatID).Load(ctx)
	if err != nil {
		return nil, err
	}

	return srs.SelectDueSequence(s.catalog.Articles(), records, now, partFilter), nil
}

// Records returns the chat's full review record mapping.
func (s *ReviewService) Records(ctx context.Context, chatID int64) (map[string]entities.ReviewRecord, error) {
	return s.recordsFor(chatID).Load(ctx)
}

// Reset clears every review record for the chat.
func (s *ReviewService) Reset(ctx context.Context, chatID int64) error {
	return s.recordsFor(chatID).Reset(ctx)
}

func chatStore(kv kvstore.Store, chatID int64) kvstore.Store {
	return kvstore.WithPrefix(kv, fmt.Sprintf("u:%d:", chatID))
}
