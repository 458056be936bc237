package domain

import (
	"errors"
	"fmt"
)

// Classes de erro da geração. Nenhuma é recuperável: qualquer uma aborta a execução.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrOutputWrite   = errors.New("output write error")
	ErrEmptyDataset  = errors.New("empty dataset")
	ErrGenerateID    = errors.New("error generating run id")
)

// Etapas do pipeline, usadas para contextualizar erros e logs
const (
	StageConfig     = "config"
	StageCatalog    = "catalog"
	StageSampling   = "sampling"
	StageReport     = "report"
	StageExportCSV  = "export_csv"
	StageExportMeta = "export_metadata"
	StageExportDB   = "export_database"
)

// Códigos de erro expostos pela API
const (
	CodeConfiguration = "GEN_001"
	CodeOutputWrite   = "GEN_002"
	CodeDatabase      = "GEN_003"
	CodeInternal      = "GEN_004"
)

// GenerationError é um erro com a etapa que falhou
type GenerationError struct {
	Err     error  // Classe do erro (ErrConfiguration, ErrOutputWrite...)
	Code    string // Código de erro para API
	Stage   string // Etapa do pipeline
	Details string // Detalhes adicionais
}

func (e *GenerationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Err.Error(), e.Stage, e.Details)
	}
	return fmt.Sprintf("%s [%s]", e.Err.Error(), e.Stage)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError cria um erro de configuração para a etapa
func NewConfigurationError(stage string, format string, args ...any) *GenerationError {
	return &GenerationError{
		Err:     ErrConfiguration,
		Code:    CodeConfiguration,
		Stage:   stage,
		Details: fmt.Sprintf(format, args...),
	}
}

// NewOutputWriteError cria um erro de escrita de saída, preservando a causa
func NewOutputWriteError(stage string, cause error) *GenerationError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &GenerationError{
		Err:     ErrOutputWrite,
		Code:    CodeOutputWrite,
		Stage:   stage,
		Details: details,
	}
}

// IsConfigurationError informa se err é (ou envolve) um erro de configuração
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsOutputWriteError informa se err é (ou envolve) um erro de escrita de saída
func IsOutputWriteError(err error) bool {
	return errors.Is(err, ErrOutputWrite)
}

// StageOf retorna a etapa registrada no erro, se houver
func StageOf(err error) string {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Stage
	}
	return ""
}
