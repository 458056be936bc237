package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-data-generator/internal/catalog"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/pkg/utils"
)

type Config struct {
	App                App                  `mapstructure:",squash"`
	Server             Server               `mapstructure:",squash"`
	Database           Database             `mapstructure:",squash"`
	Auth               Auth                 `mapstructure:",squash"`
	Generator          Generator            `mapstructure:",squash"`
	Output             Output               `mapstructure:",squash"`
	GenerationSchedule GenerationSchedule   `mapstructure:",squash"`
	Reference          domain.ReferenceData `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	ExportEnabled bool   `mapstructure:"database_export_enabled"`
	BatchSize     int    `mapstructure:"database_batch_size" validate:"gt=0,lte=5000"` // 12 colunas por linha, limite de 65535 parâmetros do PostgreSQL
	MaxRetries    uint64 `mapstructure:"database_max_retries"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminEmail        string        `mapstructure:"auth_admin_email"`
	AdminPasswordHash string        `mapstructure:"auth_admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

// Generator contém os parâmetros da geração das transações
type Generator struct {
	Seed              uint64    `mapstructure:"generator_seed"`
	Transactions      int       `mapstructure:"generator_transactions" validate:"gt=0"`
	StartDate         time.Time `mapstructure:"generator_start_date" validate:"required"`
	EndDate           time.Time `mapstructure:"generator_end_date" validate:"required,gtfield=StartDate"`
	PriceMin          float64   `mapstructure:"generator_price_min" validate:"gt=0"`
	PriceMax          float64   `mapstructure:"generator_price_max" validate:"gtefield=PriceMin"`
	WeekendBoost      float64   `mapstructure:"generator_weekend_boost" validate:"gte=1"`
	NewCustomerRate   float64   `mapstructure:"generator_new_customer_rate" validate:"gte=0,lte=1"`
	OutlierRate       float64   `mapstructure:"generator_outlier_rate" validate:"gte=0,lte=1"`
	CompetitiveRegion string    `mapstructure:"generator_competitive_region"`
	ProgressInterval  int       `mapstructure:"generator_progress_interval" validate:"gte=0"`
	ReferenceFile     string    `mapstructure:"generator_reference_file"`
}

type Output struct {
	Dir          string `mapstructure:"output_dir"`
	CSVFile      string `mapstructure:"output_csv_file" validate:"required"`
	MetadataFile string `mapstructure:"output_metadata_file" validate:"required"`
}

// CSVPath retorna o caminho completo do CSV de transações
func (o Output) CSVPath() string {
	return filepath.Join(o.Dir, o.CSVFile)
}

// MetadataPath retorna o caminho completo do arquivo de metadados
func (o Output) MetadataPath() string {
	return filepath.Join(o.Dir, o.MetadataFile)
}

type GenerationSchedule struct {
	CronSchedule string `mapstructure:"generation_schedule_cron"`
	Enabled      bool   `mapstructure:"generation_schedule_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_EXPORT_ENABLED", false) // Exportar transações para o PostgreSQL
	viper.SetDefault("DATABASE_BATCH_SIZE", 1000)      // Linhas por INSERT
	viper.SetDefault("DATABASE_MAX_RETRIES", 5)        // Tentativas de conexão

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "admin@example.com")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// Defaults do dataset de vendas fictícias 2024-2026
	viper.SetDefault("GENERATOR_SEED", 42)
	viper.SetDefault("GENERATOR_TRANSACTIONS", 100000)
	viper.SetDefault("GENERATOR_START_DATE", "2024-01-01")
	viper.SetDefault("GENERATOR_END_DATE", "2026-02-02") // Exclusivo
	viper.SetDefault("GENERATOR_PRICE_MIN", 10.0)
	viper.SetDefault("GENERATOR_PRICE_MAX", 3000.0)
	viper.SetDefault("GENERATOR_WEEKEND_BOOST", 1.3)     // Sábado e domingo vendem mais
	viper.SetDefault("GENERATOR_NEW_CUSTOMER_RATE", 0.7) // 70% clientes novos
	viper.SetDefault("GENERATOR_OUTLIER_RATE", 0.001)    // 0.1% de quantidades extremas
	viper.SetDefault("GENERATOR_COMPETITIVE_REGION", catalog.CompetitiveRegion)
	viper.SetDefault("GENERATOR_PROGRESS_INTERVAL", 10000)
	viper.SetDefault("GENERATOR_REFERENCE_FILE", "")

	viper.SetDefault("OUTPUT_DIR", "output")
	viper.SetDefault("OUTPUT_CSV_FILE", "vendas_ficticias_2024_2026.csv")
	viper.SetDefault("OUTPUT_METADATA_FILE", "metadata_vendas.txt")

	viper.SetDefault("GENERATION_SCHEDULE_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("GENERATION_SCHEDULE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(utils.DateLayout),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, domain.NewConfigurationError(domain.StageConfig, "erro ao ler configuração: %v", err)
	}

	config.Reference, err = LoadReference(config.Generator.ReferenceFile)
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica os parâmetros antes de qualquer geração.
// Erros retornados são sempre domain.ErrConfiguration.
func (c *Config) Validate() error {
	validate := validator.New()

	for _, section := range []any{c.Generator, c.Output, c.Database} {
		if err := validate.Struct(section); err != nil {
			return domain.NewConfigurationError(domain.StageConfig, "%s", describeValidationError(err))
		}
	}

	if c.Database.ExportEnabled && c.Database.URL == "" {
		return domain.NewConfigurationError(domain.StageConfig, "DATABASE_URL obrigatório quando a exportação para o banco está habilitada")
	}

	if c.GenerationSchedule.Enabled && strings.TrimSpace(c.GenerationSchedule.CronSchedule) == "" {
		return domain.NewConfigurationError(domain.StageConfig, "GENERATION_SCHEDULE_CRON obrigatório quando o agendamento está habilitado")
	}

	return nil
}

func describeValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("campo %s inválido (regra %s, valor %v)", fieldErr.Field(), fieldErr.Tag(), fieldErr.Value()))
	}
	return strings.Join(messages, "; ")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente e defaults")
}
