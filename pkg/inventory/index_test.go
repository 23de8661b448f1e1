package inventory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain number", raw: "50", want: 50},
		{name: "currency prefix", raw: "KSh 1,200", want: 1200},
		{name: "decimal", raw: "$19.99", want: 19.99},
		{name: "surrounding text", raw: "about 300 per bag", want: 300},
		{name: "zero is a real price", raw: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanPrice(tt.raw))
		})
	}
}

func TestCleanPriceUnparseable(t *testing.T) {
	for _, raw := range []string{"", "call for price", "TBD", "..."} {
		got := CleanPrice(raw)
		assert.True(t, math.IsNaN(got), "expected NaN for %q, got %v", raw, got)
	}
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name    string
		product string
		want    []string
	}{
		{name: "drops stop words", product: "Rice and Beans", want: []string{"rice", "beans"}},
		{name: "drops short tokens", product: "Tea 2 kg", want: nil},
		{name: "lowercases", product: "Maize FLOUR", want: []string{"maize", "flour"}},
		{name: "keeps with-free phrase", product: "Soap with Aloe", want: []string{"soap", "aloe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.product))
		})
	}
}

func testRows() []Row {
	return []Row{
		{Name: "Maize Flour 2kg", Price: "KSh 150", Category: "Dry Goods"},
		{Name: "Rice 5kg", Price: "KSh 650", Category: "Dry Goods"},
		{Name: "Cooking Oil 1L", Price: "KSh 320", Category: "Oils"},
		{Name: "Bar Soap", Price: "KSh 50", Category: "Household"},
		{Name: "Sugar 1kg", Price: "ask at counter", Category: "Dry Goods"},
		{Name: "   ", Price: "10", Category: "Junk"},
	}
}

func TestIndexLoad(t *testing.T) {
	ix := NewIndex()
	ix.Load(testRows())

	assert.Equal(t, 5, ix.Len(), "blank-name rows are skipped")
	assert.Equal(t, []string{"dry goods", "household", "oils"}, ix.Categories())

	record := ix.FindByName("maize flour 2KG")
	require.NotNil(t, record)
	assert.Equal(t, "Maize Flour 2kg", record.Name)
	assert.Equal(t, 150.0, record.CleanPrice)
	assert.Equal(t, []string{"maize", "flour", "2kg"}, record.Keywords)

	sugar := ix.FindByName("Sugar 1kg")
	require.NotNil(t, sugar)
	assert.False(t, sugar.HasKnownPrice())
}

func TestIndexLoadIsIdempotent(t *testing.T) {
	ix := NewIndex()
	ix.Load(testRows())
	first := ix.All()

	ix.Load(testRows())
	second := ix.All()

	assert.Equal(t, first, second)
}

func TestFindByNameMiss(t *testing.T) {
	ix := NewIndex()
	ix.Load(testRows())

	assert.Nil(t, ix.FindByName("Quinoa"))
	assert.Nil(t, ix.FindByName(""))
}

func TestFindByNameReturnsCopy(t *testing.T) {
	ix := NewIndex()
	ix.Load(testRows())

	record := ix.FindByName("Bar Soap")
	require.NotNil(t, record)
	record.Name = "mutated"

	assert.Equal(t, "Bar Soap", ix.FindByName("Bar Soap").Name)
}
