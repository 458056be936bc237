package catalog

import (
	"time"

	"github.com/vfg2006/sales-data-generator/internal/domain"
)

// Categorias usadas no catálogo padrão
const (
	CategoryElectronics = "Eletrônicos"
	CategoryClothing    = "Vestuário"
	CategoryFood        = "Alimentos"
	CategoryHome        = "Casa e Decoração"
	CategorySports      = "Esportes e Lazer"
	CategoryBeverages   = "Bebidas"
)

// CompetitiveRegion é o estado com descontos adicionais
const CompetitiveRegion = "SP"

// DefaultReference retorna as tabelas padrão do dataset de vendas 2024-2026.
// Uma nova cópia é criada a cada chamada.
func DefaultReference() domain.ReferenceData {
	return domain.ReferenceData{
		Categories: []domain.CategoryAllocation{
			{Category: CategoryElectronics, Count: 10},
			{Category: CategoryClothing, Count: 12},
			{Category: CategoryFood, Count: 10},
			{Category: CategoryHome, Count: 10},
			{Category: CategorySports, Count: 8},
		},
		// Lojas do Sudeste
		Regions: []domain.RegionAllocation{
			{Region: "SP", Count: 50},
			{Region: "RJ", Count: 40},
			{Region: "MG", Count: 40},
			{Region: "ES", Count: 20},
		},
		CalendarRules: []domain.CalendarRule{
			{Month: time.January, Day: 1, Multiplier: 1.5, Categories: all(), Name: "Ano Novo"},
			{Month: time.January, Day: 15, Multiplier: 2.0, Categories: []string{CategoryElectronics, CategoryClothing}, Name: "Volta às Aulas"},
			{Month: time.January, Day: 20, Multiplier: 2.0, Categories: []string{CategoryElectronics, CategoryClothing}, Name: "Volta às Aulas"},
			{Month: time.February, Day: 14, Multiplier: 1.8, Categories: []string{CategoryClothing, CategoryHome}, Name: "São Valentim"},
			{Month: time.March, Day: 29, Multiplier: 2.5, Categories: []string{CategoryFood}, Name: "Páscoa 2024"},
			{Month: time.April, Day: 20, Multiplier: 1.3, Categories: all(), Name: "Tiradentes"},
			{Month: time.May, Day: 12, Multiplier: 1.8, Categories: []string{CategoryClothing, CategoryHome}, Name: "Dia das Mães"},
			{Month: time.June, Day: 12, Multiplier: 1.5, Categories: all(), Name: "Dia dos Namorados"},
			{Month: time.September, Day: 7, Multiplier: 1.2, Categories: all(), Name: "Independência"},
			{Month: time.October, Day: 12, Multiplier: 2.2, Categories: []string{CategorySports}, Name: "Dia das Crianças"},
			{Month: time.November, Day: 29, Multiplier: 4.0, Categories: []string{CategoryElectronics, CategoryClothing}, Name: "Black Friday 2024"},
			{Month: time.November, Day: 28, Multiplier: 3.5, Categories: all(), Name: "Black Friday 2025"},
			{Month: time.December, Day: 24, Multiplier: 3.0, Categories: all(), Name: "Véspera de Natal"},
			{Month: time.December, Day: 25, Multiplier: 2.5, Categories: all(), Name: "Natal"},
			{Month: time.December, Day: 31, Multiplier: 1.8, Categories: []string{CategoryFood, CategoryBeverages}, Name: "Réveillon"},
		},
		QuantityMeans: []domain.CategoryMean{
			{Category: CategoryFood, Mean: 3},
			{Category: CategoryElectronics, Mean: 1.5},
		},
		DefaultQuantityMean: 2,
		Outliers:            DefaultOutliers(),
	}
}

// DefaultOutliers retorna as vendas extremas inseridas ao final do dataset
func DefaultOutliers() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:         "20241129000001",
			Timestamp:  time.Date(2024, time.November, 29, 8, 1, 0, 0, time.UTC),
			ProductID:  "PROD005",
			Category:   CategoryElectronics,
			StoreID:    "LOJA015",
			ListPrice:  1999.99,
			SalePrice:  1199.99,
			TotalValue: 29999.75,
			Quantity:   25,
			CustomerID: "CLI045672",
			Discount:   0.40,
		},
		{
			ID:         "20241224120050",
			Timestamp:  time.Date(2024, time.December, 24, 12, 0, 0, 0, time.UTC),
			ProductID:  "PROD042",
			Category:   CategorySports,
			StoreID:    "LOJA067",
			ListPrice:  349.90,
			SalePrice:  279.90,
			TotalValue: 11196.00,
			Quantity:   40,
			CustomerID: "CLI023489",
			Discount:   0.20,
		},
		{
			ID:         "20250115004500",
			Timestamp:  time.Date(2025, time.January, 15, 9, 30, 0, 0, time.UTC),
			ProductID:  "PROD012",
			Category:   CategoryClothing,
			StoreID:    "LOJA034",
			ListPrice:  49.90,
			SalePrice:  39.90,
			TotalValue: 3990.00,
			Quantity:   100,
			CustomerID: "CLI078901",
			Discount:   0.2004,
		},
	}
}

func all() []string {
	return []string{domain.AllCategories}
}
