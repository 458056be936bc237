package config

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-data-generator/internal/catalog"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/pkg/utils"
)

// LoadReference carrega as tabelas de referência. Sem arquivo, usa as tabelas padrão;
// com arquivo (YAML ou JSON), cada seção presente substitui a seção padrão inteira.
func LoadReference(path string) (domain.ReferenceData, error) {
	reference := catalog.DefaultReference()
	if path == "" {
		return reference, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return domain.ReferenceData{}, domain.NewConfigurationError(domain.StageConfig, "erro ao ler arquivo de referência %s: %v", path, err)
	}

	err := v.Unmarshal(&reference,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			flexibleTimeHook,
		)),
		func(dc *mapstructure.DecoderConfig) {
			dc.ZeroFields = true
		},
	)
	if err != nil {
		return domain.ReferenceData{}, domain.NewConfigurationError(domain.StageConfig, "erro ao interpretar arquivo de referência %s: %v", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"file":       path,
		"categories": len(reference.Categories),
		"regions":    len(reference.Regions),
		"rules":      len(reference.CalendarRules),
		"outliers":   len(reference.Outliers),
	}).Info("Tabelas de referência carregadas de arquivo")

	return reference, nil
}

// flexibleTimeHook aceita horários de outliers com ou sem hora ("2024-11-29" ou "2024-11-29 08:01:00")
func flexibleTimeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}
	return utils.ParseFlexibleDate(data.(string))
}
