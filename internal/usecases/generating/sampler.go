package generating

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/sales-data-generator/internal/catalog"
	"github.com/vfg2006/sales-data-generator/internal/config"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/pkg/random"
	"github.com/vfg2006/sales-data-generator/pkg/utils"
)

// Parâmetros fixos das distribuições
const (
	hourMean    = 14.0
	hourStdDev  = 4.0
	openingHour = 8.0
	closingHour = 22.0

	markupMin = 1.1
	markupMax = 1.3

	baseDiscountMax          = 0.3
	holidayDiscountThreshold = 1.5
	holidayDiscountMin       = 0.1
	holidayDiscountMax       = 0.3
	regionalDiscountMin      = 0.05
	regionalDiscountMax      = 0.1
	maxDiscount              = 0.6

	outlierQuantityMin = 20
	outlierQuantityMax = 100

	// Tentativas de novo sorteio de data quando o ID gerado coincide com um outlier
	maxIDRedraws = 32
)

// sampler gera uma transação por chamada. O stream e o contador de clientes são
// o único estado compartilhado entre iterações; ambos pertencem ao sampler.
//
// Ordem de consumo do stream por transação: produto, loja, dia, hora, minuto, segundo,
// desconto (base, bônus de data, bônus regional), markup do preço, quantidade (Poisson,
// chance de outlier, quantidade outlier), cliente (chance de novo, cliente recorrente).
type sampler struct {
	params       config.Generator
	reference    domain.ReferenceData
	catalog      *catalog.Catalog
	stream       *random.Stream
	days         int
	reservedIDs  map[string]bool
	nextCustomer int
}

func newSampler(params config.Generator, reference domain.ReferenceData, cat *catalog.Catalog, stream *random.Stream) *sampler {
	reserved := make(map[string]bool, len(reference.Outliers))
	for _, outlier := range reference.Outliers {
		reserved[outlier.ID] = true
	}

	return &sampler{
		params:       params,
		reference:    reference,
		catalog:      cat,
		stream:       stream,
		days:         utils.DaysBetween(params.StartDate, params.EndDate),
		reservedIDs:  reserved,
		nextCustomer: 1,
	}
}

func (s *sampler) sample(index int) (domain.Transaction, error) {
	product := s.catalog.Products[s.stream.IntN(len(s.catalog.Products))]
	store := s.catalog.Stores[s.stream.IntN(len(s.catalog.Stores))]

	date, id, err := s.drawDate(index)
	if err != nil {
		return domain.Transaction{}, err
	}

	hour := int(clamp(s.stream.Normal(hourMean, hourStdDev), openingHour, closingHour))
	minute := s.stream.IntN(60)
	second := s.stream.IntN(60)
	timestamp := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, date.Location())

	calendarMultiplier := s.catalog.Calendar.Multiplier(date, product.Category)
	multiplier := calendarMultiplier
	if utils.IsWeekend(date) {
		multiplier *= s.params.WeekendBoost
	}

	discount := s.discount(calendarMultiplier, store.Region)

	listPrice := utils.RoundWithTwoDecimalPlace(product.BasePrice * s.stream.Uniform(markupMin, markupMax))
	salePrice := utils.RoundWithTwoDecimalPlace(listPrice * (1 - discount))

	quantity := s.quantity(product.Category, multiplier)
	totalValue := utils.RoundWithTwoDecimalPlace(salePrice * float64(quantity))

	return domain.Transaction{
		ID:         id,
		Timestamp:  timestamp,
		ProductID:  product.ID,
		Category:   product.Category,
		StoreID:    store.ID,
		ListPrice:  listPrice,
		SalePrice:  salePrice,
		TotalValue: totalValue,
		Quantity:   quantity,
		CustomerID: s.customer(),
		Discount:   discount,
	}, nil
}

// drawDate sorteia um dia em [início, fim). Se o ID resultante coincidir com o de um
// outlier fixo, o dia é sorteado novamente.
func (s *sampler) drawDate(index int) (time.Time, string, error) {
	for attempt := 0; attempt < maxIDRedraws; attempt++ {
		date := s.params.StartDate.AddDate(0, 0, s.stream.IntN(s.days))
		id := transactionID(date, index)
		if !s.reservedIDs[id] {
			return date, id, nil
		}
	}

	return time.Time{}, "", domain.NewConfigurationError(domain.StageSampling,
		"não foi possível gerar um ID livre para a transação %d: os IDs dos outliers ocupam todo o período", index)
}

// discount calcula o desconto considerando data comemorativa e estado da loja
func (s *sampler) discount(calendarMultiplier float64, region string) float64 {
	discount := s.stream.Uniform(0, baseDiscountMax)

	if calendarMultiplier > holidayDiscountThreshold {
		discount += s.stream.Uniform(holidayDiscountMin, holidayDiscountMax)
	}

	// Lojas da região mais competitiva dão descontos maiores
	if region == s.params.CompetitiveRegion {
		discount += s.stream.Uniform(regionalDiscountMin, regionalDiscountMax)
	}

	return utils.RoundTo(math.Min(discount, maxDiscount), 4)
}

// quantity sorteia a quantidade vendida conforme a categoria e o multiplicador do dia
func (s *sampler) quantity(category string, multiplier float64) int {
	base := s.stream.Poisson(s.reference.QuantityMean(category)) + 1
	quantity := int(float64(base) * multiplier)

	if s.stream.Chance(s.params.OutlierRate) {
		quantity = s.stream.IntRange(outlierQuantityMin, outlierQuantityMax+1)
	}

	return max(1, quantity)
}

// customer cria um cliente novo ou reaproveita um cliente já criado
func (s *sampler) customer() string {
	if s.nextCustomer == 1 || s.stream.Chance(s.params.NewCustomerRate) {
		id := customerID(s.nextCustomer)
		s.nextCustomer++
		return id
	}

	return customerID(s.stream.IntRange(1, s.nextCustomer))
}

func transactionID(date time.Time, index int) string {
	return fmt.Sprintf("%s%06d", date.Format(utils.CompactDate), index)
}

func customerID(n int) string {
	return fmt.Sprintf("CLI%06d", n)
}

func clamp(value, low, high float64) float64 {
	return math.Max(low, math.Min(high, value))
}
