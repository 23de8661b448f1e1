package inventory

import (
	"sort"
	"strings"
)

// PriceRange bounds a price filter (inclusive on both ends).
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filters are the optional structured constraints extracted from a query.
type Filters struct {
	Category   string      `json:"category,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
}

// ScoredRecord is a record with its relevance score (> 0 by contract).
type ScoredRecord struct {
	Record
	Score int `json:"score"`
}

const maxScoreResults = 5
const maxRecommendations = 3

// Scoring weights. Additive, case-insensitive, deterministic.
const (
	scoreExactName     = 100
	scoreKeywordToken  = 50
	scoreNameSubstring = 30
	scoreCategoryMatch = 75
	scorePriceInRange  = 25
)

// Scorer ranks inventory records against free-text queries. The ranking is a
// fixed arithmetic rule rather than a model so results are reproducible
// against a given inventory snapshot.
type Scorer struct {
	index *Index
}

func NewScorer(index *Index) *Scorer {
	return &Scorer{index: index}
}

// Score ranks the inventory against query and filters and returns the top 5
// qualifying records. Records scoring 0 are excluded; ties keep first-seen
// order.
func (s *Scorer) Score(query string, filters Filters) []ScoredRecord {
	lowered := strings.ToLower(strings.TrimSpace(query))
	tokens := strings.Fields(lowered)

	var scored []ScoredRecord
	for _, record := range s.index.All() {
		score := scoreRecord(&record, lowered, tokens, filters)
		if score <= 0 {
			continue
		}
		scored = append(scored, ScoredRecord{Record: record, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxScoreResults {
		scored = scored[:maxScoreResults]
	}
	return scored
}

func scoreRecord(record *Record, loweredQuery string, tokens []string, filters Filters) int {
	score := 0
	loweredName := strings.ToLower(record.Name)

	if loweredName == loweredQuery && loweredQuery != "" {
		score += scoreExactName
	}

	for _, token := range tokens {
		if containsKeyword(record.Keywords, token) {
			score += scoreKeywordToken
		}
		if strings.Contains(loweredName, token) {
			score += scoreNameSubstring
		}
	}

	if filters.Category != "" && record.Category != "" &&
		strings.EqualFold(filters.Category, record.Category) {
		score += scoreCategoryMatch
	}

	if filters.PriceRange != nil && record.HasKnownPrice() &&
		record.CleanPrice >= filters.PriceRange.Min &&
		record.CleanPrice <= filters.PriceRange.Max {
		score += scorePriceInRange
	}

	return score
}

func containsKeyword(keywords []string, token string) bool {
	for _, k := range keywords {
		if k == token {
			return true
		}
	}
	return false
}

// Recommend returns up to 3 records sharing a category with any cart item,
// excluding records already in the cart by name. First-match order, no
// scoring. An empty cart yields no recommendations.
func (s *Scorer) Recommend(cart []Record, filters Filters) []Record {
	if len(cart) == 0 {
		return nil
	}

	cartCategories := make(map[string]bool)
	cartNames := make(map[string]bool)
	for _, item := range cart {
		if item.Category != "" {
			cartCategories[strings.ToLower(item.Category)] = true
		}
		cartNames[strings.ToLower(item.Name)] = true
	}

	var recommendations []Record
	for _, record := range s.index.All() {
		if len(recommendations) >= maxRecommendations {
			break
		}
		if !cartCategories[strings.ToLower(record.Category)] {
			continue
		}
		if filters.Category != "" && !strings.EqualFold(filters.Category, record.Category) {
			continue
		}
		if cartNames[strings.ToLower(record.Name)] {
			continue
		}
		recommendations = append(recommendations, record)
	}
	return recommendations
}
