package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer() *Scorer {
	ix := NewIndex()
	ix.Load([]Row{
		{Name: "Maize Flour 2kg", Price: "150", Category: "Dry Goods"},
		{Name: "Wheat Flour 2kg", Price: "180", Category: "Dry Goods"},
		{Name: "Rice 5kg", Price: "650", Category: "Dry Goods"},
		{Name: "Cooking Oil 1L", Price: "320", Category: "Oils"},
		{Name: "Bar Soap", Price: "50", Category: "Household"},
		{Name: "Dish Soap", Price: "120", Category: "Household"},
	})
	return NewScorer(ix)
}

func TestScoreExactNameWinsFirst(t *testing.T) {
	s := newTestScorer()

	results := s.Score("Maize Flour 2kg", Filters{})
	require.NotEmpty(t, results)
	assert.Equal(t, "Maize Flour 2kg", results[0].Name)
	// exact name + every name token as keyword and substring
	assert.GreaterOrEqual(t, results[0].Score, scoreExactName)
}

func TestScoreKeywordAndSubstringCompound(t *testing.T) {
	s := newTestScorer()

	results := s.Score("flour", Filters{})
	require.Len(t, results, 2)
	for _, r := range results {
		// "flour" is both a keyword and a name substring for each match
		assert.Equal(t, scoreKeywordToken+scoreNameSubstring, r.Score)
	}
}

func TestScoreZeroExcluded(t *testing.T) {
	s := newTestScorer()

	assert.Empty(t, s.Score("bicycle", Filters{}))
}

func TestScoreCategoryFilter(t *testing.T) {
	s := newTestScorer()

	results := s.Score("soap", Filters{Category: "Household"})
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, "Household", r.Category)
		assert.Equal(t, scoreKeywordToken+scoreNameSubstring+scoreCategoryMatch, r.Score)
	}
}

func TestScorePriceRangeBonus(t *testing.T) {
	s := newTestScorer()

	withRange := s.Score("soap", Filters{PriceRange: &PriceRange{Min: 0, Max: 100}})
	require.NotEmpty(t, withRange)
	assert.Equal(t, "Bar Soap", withRange[0].Name)
	assert.Equal(t, scoreKeywordToken+scoreNameSubstring+scorePriceInRange, withRange[0].Score)

	// Dish Soap at 120 falls outside the range and gets no bonus
	require.Len(t, withRange, 2)
	assert.Equal(t, scoreKeywordToken+scoreNameSubstring, withRange[1].Score)
}

func TestScoreDeterministic(t *testing.T) {
	s := newTestScorer()

	first := s.Score("flour 2kg", Filters{})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score("flour 2kg", Filters{}))
	}
}

func TestScoreCapsAtFive(t *testing.T) {
	ix := NewIndex()
	var rows []Row
	for _, n := range []string{"Soap A", "Soap B", "Soap C", "Soap D", "Soap E", "Soap F", "Soap G"} {
		rows = append(rows, Row{Name: n, Price: "10", Category: "Household"})
	}
	ix.Load(rows)
	s := NewScorer(ix)

	assert.Len(t, s.Score("soap", Filters{}), 5)
}

func TestRecommendSharesCategory(t *testing.T) {
	s := newTestScorer()

	cart := []Record{*s.index.FindByName("Maize Flour 2kg")}
	recs := s.Recommend(cart, Filters{})

	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.Equal(t, "Dry Goods", r.Category)
		assert.NotEqual(t, "Maize Flour 2kg", r.Name)
	}
}

func TestRecommendEmptyCart(t *testing.T) {
	s := newTestScorer()

	assert.Nil(t, s.Recommend(nil, Filters{}))
	assert.Nil(t, s.Recommend([]Record{}, Filters{}))
}

func TestRecommendCapsAtThree(t *testing.T) {
	ix := NewIndex()
	ix.Load([]Row{
		{Name: "Item A", Price: "10", Category: "Misc"},
		{Name: "Item B", Price: "10", Category: "Misc"},
		{Name: "Item C", Price: "10", Category: "Misc"},
		{Name: "Item D", Price: "10", Category: "Misc"},
		{Name: "Item E", Price: "10", Category: "Misc"},
	})
	s := NewScorer(ix)

	cart := []Record{*ix.FindByName("Item A")}
	recs := s.Recommend(cart, Filters{})

	require.Len(t, recs, 3)
	// first-match order: B, C, D
	assert.Equal(t, "Item B", recs[0].Name)
	assert.Equal(t, "Item C", recs[1].Name)
	assert.Equal(t, "Item D", recs[2].Name)
}
