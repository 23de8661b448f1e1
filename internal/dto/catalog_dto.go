package dto

type ProductDTO struct {
	Name     string  `json:"name"`
	Price    string  `json:"price"`
	Category string  `json:"category"`
	Score    float64 `json:"score,omitempty"`
}

type SearchCatalogRequest struct {
	Query    string   `json:"query" validate:"required"`
	Category string   `json:"category"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
}

type SearchCatalogResponse struct {
	Products []ProductDTO `json:"products"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
