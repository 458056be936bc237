package catalog

import (
	"time"

	"github.com/vfg2006/sales-data-generator/internal/domain"
)

type monthDay struct {
	month time.Month
	day   int
}

// Calendar indexa as regras de datas comemorativas por (mês, dia)
type Calendar struct {
	rules map[monthDay]domain.CalendarRule
}

// NewCalendar indexa as regras. Em chaves repetidas prevalece a última regra.
func NewCalendar(rules []domain.CalendarRule) Calendar {
	indexed := make(map[monthDay]domain.CalendarRule, len(rules))
	for _, rule := range rules {
		indexed[monthDay{month: rule.Month, day: rule.Day}] = rule
	}
	return Calendar{rules: indexed}
}

// Multiplier retorna o multiplicador da data para a categoria, ou 1.0 se nenhuma regra se aplica
func (c Calendar) Multiplier(date time.Time, category string) float64 {
	rule, ok := c.rules[monthDay{month: date.Month(), day: date.Day()}]
	if !ok || !rule.Applies(category) {
		return 1.0
	}
	return rule.Multiplier
}

// Rule retorna a regra cadastrada para a data, se houver
func (c Calendar) Rule(date time.Time) (domain.CalendarRule, bool) {
	rule, ok := c.rules[monthDay{month: date.Month(), day: date.Day()}]
	return rule, ok
}

func (c Calendar) Len() int {
	return len(c.rules)
}
