package domain

// Product representa um item do catálogo fictício
type Product struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	BasePrice float64 `json:"base_price"`
}

// CategoryAllocation define quantos produtos são criados para uma categoria
type CategoryAllocation struct {
	Category string `json:"category" mapstructure:"category"`
	Count    int    `json:"count" mapstructure:"count"`
}
