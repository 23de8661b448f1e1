package service

import (
	"math"

	"vendai-assistant-be/internal/dto"
	"vendai-assistant-be/pkg/inventory"
)

type ICatalogService interface {
	Search(req *dto.SearchCatalogRequest) *dto.SearchCatalogResponse
	Categories() *dto.CategoriesResponse
	List() *dto.SearchCatalogResponse
}

type catalogService struct {
	index  *inventory.Index
	scorer *inventory.Scorer
}

func NewCatalogService(index *inventory.Index, scorer *inventory.Scorer) ICatalogService {
	return &catalogService{
		index:  index,
		scorer: scorer,
	}
}

func (c *catalogService) Search(req *dto.SearchCatalogRequest) *dto.SearchCatalogResponse {
	filters := inventory.Filters{Category: req.Category}
	if req.MinPrice != nil || req.MaxPrice != nil {
		// An absent bound leaves that side open.
		pr := &inventory.PriceRange{Min: 0, Max: math.Inf(1)}
		if req.MinPrice != nil {
			pr.Min = *req.MinPrice
		}
		if req.MaxPrice != nil {
			pr.Max = *req.MaxPrice
		}
		filters.PriceRange = pr
	}

	scored := c.scorer.Score(req.Query, filters)
	products := make([]dto.ProductDTO, 0, len(scored))
	for _, s := range scored {
		products = append(products, dto.ProductDTO{
			Name:     s.Record.Name,
			Price:    s.Record.RawPrice,
			Category: s.Record.Category,
			Score:    float64(s.Score),
		})
	}
	return &dto.SearchCatalogResponse{Products: products}
}

func (c *catalogService) Categories() *dto.CategoriesResponse {
	return &dto.CategoriesResponse{Categories: c.index.Categories()}
}

func (c *catalogService) List() *dto.SearchCatalogResponse {
	records := c.index.All()
	products := make([]dto.ProductDTO, 0, len(records))
	for _, r := range records {
		products = append(products, dto.ProductDTO{
			Name:     r.Name,
			Price:    r.RawPrice,
			Category: r.Category,
		})
	}
	return &dto.SearchCatalogResponse{Products: products}
}
