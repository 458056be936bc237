package domain

// Store representa uma loja e o estado (UF) onde ela fica
type Store struct {
	ID     string `json:"id"`
	Region string `json:"region"`
}

// RegionAllocation define quantas lojas ficam em cada estado, na ordem de atribuição
type RegionAllocation struct {
	Region string `json:"region" mapstructure:"region"`
	Count  int    `json:"count" mapstructure:"count"`
}
