package domain

import "time"

// AllCategories indica que a regra vale para todas as categorias
const AllCategories = "Todos"

// CalendarRule associa uma data comemorativa (mês/dia) a um multiplicador de vendas
type CalendarRule struct {
	Month      time.Month `json:"month" mapstructure:"month"`
	Day        int        `json:"day" mapstructure:"day"`
	Multiplier float64    `json:"multiplier" mapstructure:"multiplier"`
	Categories []string   `json:"categories" mapstructure:"categories"`
	Name       string     `json:"name,omitempty" mapstructure:"name"`
}

// Applies informa se a regra afeta a categoria
func (r CalendarRule) Applies(category string) bool {
	for _, c := range r.Categories {
		if c == AllCategories || c == category {
			return true
		}
	}
	return false
}
