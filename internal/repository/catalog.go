package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
)

var ErrArticleNotFound = errors.New("article not found")

// CatalogRepository provides access to the Constitution study catalog: the
// preamble, the parts, and the key articles flattened into one ordered list.
// The catalog is loaded once from a JSON asset and never changes.
type CatalogRepository struct {
	preamble entities.Preamble
	parts    []entities.Part
	articles []entities.Article
	byKey    map[string]entities.Article
}

// NewCatalogRepository loads the catalog from the JSON file at path.
func NewCatalogRepository(path string) (*CatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Preamble entities.Preamble `json:"preamble"`
		Parts    []entities.Part   `json:"parts"`
	}
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}

	if len(doc.Parts) == 0 {
		return nil, fmt.Errorf("catalog %s has no parts", path)
	}

	r := &CatalogRepository{
		preamble: doc.Preamble,
		parts:    doc.Parts,
		byKey:    make(map[string]entities.Article),
	}

	// Flatten parts into one ordered article list with stable keys. Catalog
	// order is the tie-breaker everywhere downstream, so the order here is
	// exactly the file order.
	for pi, part := range doc.Parts {
		for ai, article := range part.KeyArticles {
			article.PartNumber = part.Number
			article.PartTitle = part.Title
			article.Key = part.Number + "-" + article.Number

			doc.Parts[pi].KeyArticles[ai] = article
			r.articles = append(r.articles, article)
			r.byKey[article.Key] = article
		}
	}

	return r, nil
}

// Preamble returns the preamble.
func (r *CatalogRepository) Preamble() entities.Preamble {
	return r.preamble
}

// Parts returns all parts in catalog order.
func (r *CatalogRepository) Parts() []entities.Part {
	return r.parts
}

// PartByNumber returns the part with the given Roman numeral.
func (r *CatalogRepository) PartByNumber(number string) (entities.Part, bool) {
	for _, p := range r.parts {
		if p.Number == number {
			return p, true
		}
	}
	return entities.Part{}, false
}

// Articles returns all key articles in catalog order.
func (r *CatalogRepository) Articles() []entities.Article {
	return r.articles
}

// GetByKey returns the article with the given stable key.
func (r *CatalogRepository) GetByKey(key string) (entities.Article, error) {
	a, ok := r.byKey[key]
	if !ok {
		return entities.Article{}, ErrArticleNotFound
	}
	return a, nil
}

// Search returns the articles whose number, title or summary contains the
// query, case-insensitively, in catalog order. An empty query matches all.
func (r *CatalogRepository) Search(query string) []entities.Article {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.articles
	}

	var matched []entities.Article
	for _, a := range r.articles {
		if strings.Contains(strings.ToLower(a.Number), query) ||
			strings.Contains(strings.ToLower(a.Title), query) ||
			strings.Contains(strings.ToLower(a.Summary), query) {
			matched = append(matched, a)
		}
	}
	return matched
}
