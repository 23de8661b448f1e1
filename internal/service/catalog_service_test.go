package service

import (
	"testing"

	"vendai-assistant-be/internal/dto"
	"vendai-assistant-be/pkg/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService() ICatalogService {
	index := inventory.NewIndex()
	index.Load([]inventory.Row{
		{Name: "Bar Soap", Price: "80", Category: "Household"},
		{Name: "Dish Soap", Price: "700", Category: "Household"},
		{Name: "Rice 5kg", Price: "650", Category: "Dry Goods"},
	})
	return NewCatalogService(index, inventory.NewScorer(index))
}

func floatPtr(v float64) *float64 { return &v }

func TestSearchMinPriceOnly(t *testing.T) {
	svc := newTestCatalogService()

	res := svc.Search(&dto.SearchCatalogRequest{
		Query:    "soap",
		MinPrice: floatPtr(100),
	})

	require.Len(t, res.Products, 2)
	// Only Dish Soap sits above the lower bound, so it earns the price
	// bonus and ranks first.
	assert.Equal(t, "Dish Soap", res.Products[0].Name)
	assert.Equal(t, 105.0, res.Products[0].Score)
	assert.Equal(t, "Bar Soap", res.Products[1].Name)
	assert.Equal(t, 80.0, res.Products[1].Score)
}

func TestSearchMaxPriceOnly(t *testing.T) {
	svc := newTestCatalogService()

	res := svc.Search(&dto.SearchCatalogRequest{
		Query:    "soap",
		MaxPrice: floatPtr(100),
	})

	require.Len(t, res.Products, 2)
	assert.Equal(t, "Bar Soap", res.Products[0].Name)
	assert.Equal(t, 105.0, res.Products[0].Score)
}

func TestSearchBothBounds(t *testing.T) {
	svc := newTestCatalogService()

	res := svc.Search(&dto.SearchCatalogRequest{
		Query:    "soap",
		MinPrice: floatPtr(50),
		MaxPrice: floatPtr(100),
	})

	require.NotEmpty(t, res.Products)
	assert.Equal(t, "Bar Soap", res.Products[0].Name)
	assert.Equal(t, 105.0, res.Products[0].Score)
}

func TestSearchCategoryFilter(t *testing.T) {
	svc := newTestCatalogService()

	res := svc.Search(&dto.SearchCatalogRequest{
		Query:    "rice",
		Category: "Dry Goods",
	})

	require.NotEmpty(t, res.Products)
	assert.Equal(t, "Rice 5kg", res.Products[0].Name)
}

func TestListAndCategories(t *testing.T) {
	svc := newTestCatalogService()

	assert.Len(t, svc.List().Products, 3)
	assert.Equal(t, []string{"dry goods", "household"}, svc.Categories().Categories)
}
