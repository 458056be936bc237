package domain

import (
	"fmt"
	"time"
)

// TimestampLayout é o formato de data/hora usado no CSV exportado
const TimestampLayout = "2006-01-02 15:04:05"

// Transaction é uma venda fictícia gerada (ou injetada manualmente como outlier)
type Transaction struct {
	ID         string    `json:"id_transacao" mapstructure:"id"`
	Timestamp  time.Time `json:"data_hora_transacao" mapstructure:"timestamp"`
	ProductID  string    `json:"id_produto" mapstructure:"product_id"`
	Category   string    `json:"categoria_produto" mapstructure:"category"`
	StoreID    string    `json:"id_loja" mapstructure:"store_id"`
	ListPrice  float64   `json:"preco_de" mapstructure:"list_price"`
	SalePrice  float64   `json:"preco_por" mapstructure:"sale_price"`
	TotalValue float64   `json:"valor_venda" mapstructure:"total_value"`
	Quantity   int       `json:"quantidade_vendida" mapstructure:"quantity"`
	CustomerID string    `json:"id_cliente" mapstructure:"customer_id"`
	Discount   float64   `json:"desconto" mapstructure:"discount"` // fração, ex.: 0.2345
}

// DiscountLabel formata o desconto como percentual com duas casas, ex.: "23.45%"
func (t Transaction) DiscountLabel() string {
	return fmt.Sprintf("%.2f%%", t.Discount*100)
}

// FormattedTimestamp formata a data/hora no layout do CSV
func (t Transaction) FormattedTimestamp() string {
	return t.Timestamp.Format(TimestampLayout)
}
