package domain

// ReferenceData reúne as tabelas fixas usadas pela geração: categorias, lojas,
// datas comemorativas, médias de quantidade e outliers injetados manualmente.
type ReferenceData struct {
	Categories          []CategoryAllocation `json:"categories" mapstructure:"categories"`
	Regions             []RegionAllocation   `json:"regions" mapstructure:"regions"`
	CalendarRules       []CalendarRule       `json:"calendar_rules" mapstructure:"calendar_rules"`
	QuantityMeans       []CategoryMean       `json:"quantity_means" mapstructure:"quantity_means"`
	DefaultQuantityMean float64              `json:"default_quantity_mean" mapstructure:"default_quantity_mean"`
	Outliers            []Transaction        `json:"outliers" mapstructure:"outliers"`
}

// CategoryMean é a média de Poisson da quantidade vendida para uma categoria
type CategoryMean struct {
	Category string  `json:"category" mapstructure:"category"`
	Mean     float64 `json:"mean" mapstructure:"mean"`
}

// ProductCount soma os produtos de todas as categorias
func (r ReferenceData) ProductCount() int {
	total := 0
	for _, c := range r.Categories {
		total += c.Count
	}
	return total
}

// StoreCount soma as lojas de todos os estados
func (r ReferenceData) StoreCount() int {
	total := 0
	for _, region := range r.Regions {
		total += region.Count
	}
	return total
}

// QuantityMean retorna a média de Poisson usada para a categoria
func (r ReferenceData) QuantityMean(category string) float64 {
	for _, m := range r.QuantityMeans {
		if m.Category == category {
			return m.Mean
		}
	}
	return r.DefaultQuantityMean
}
