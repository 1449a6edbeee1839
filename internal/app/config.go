package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "precisecalc/internal/api/grpc"
	apihttp "precisecalc/internal/api/http"
	"precisecalc/internal/infrastructure/click"
	"precisecalc/internal/infrastructure/kafka"
	"precisecalc/internal/infrastructure/mongo"
	"precisecalc/internal/infrastructure/pg"
	"precisecalc/internal/infrastructure/redis"
)

// AppName - префикс переменных окружения.
const AppName = "CALCULATOR"

// Драйверы журнала операций.
const (
	JournalPostgres = "pg"
	JournalMongo    = "mongo"
	JournalNone     = "none"
)

// CalcConfig - настройки ядра калькулятора. Переменные: CALCULATOR_CALC_PRECISION.
type CalcConfig struct {
	Precision int `envconfig:"PRECISION" default:"28"`
}

// JournalConfig - куда писать журнал операций. Переменные: CALCULATOR_JOURNAL_DRIVER (pg, mongo, none).
type JournalConfig struct {
	Driver string `envconfig:"DRIVER" default:"pg"`
}

// Config - конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	LogLevel   string               `envconfig:"LOG_LEVEL" default:"info"`
	LogFile    string               `envconfig:"LOG_FILE" default:"precisecalc.log"`
	Server     apihttp.ServerConfig `envconfig:"SERVER"`
	Grpc       apigrpc.Config       `envconfig:"GRPC"`
	Calc       CalcConfig           `envconfig:"CALC"`
	Journal    JournalConfig        `envconfig:"JOURNAL"`
	DB         pg.Config            `envconfig:"DB"`
	Mongo      mongo.Config         `envconfig:"MONGO"`
	Redis      redis.Config         `envconfig:"REDIS"`
	Kafka      kafka.Config         `envconfig:"KAFKA"`
	ClickHouse click.Config         `envconfig:"CLICKHOUSE"`
}

// Validate проверяет значения, которые envconfig не может проверить сам.
func (c Config) Validate() error {
	switch c.Journal.Driver {
	case JournalPostgres, JournalMongo, JournalNone:
	default:
		return fmt.Errorf("journal driver %q: want %s, %s or %s", c.Journal.Driver, JournalPostgres, JournalMongo, JournalNone)
	}
	if c.Calc.Precision <= 0 {
		return fmt.Errorf("calc precision must be positive, got %d", c.Calc.Precision)
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Путь к .env можно переопределить через CALCULATOR_ENV_FILE.
func LoadCfg() (Config, error) {
	envFile := os.Getenv(AppName + "_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("config: %s не найден, используем окружение: %v", envFile, err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Journal.Driver = strings.ToLower(cfg.Journal.Driver)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.Calc.Precision < 28 {
		log.Printf("config: CALCULATOR_CALC_PRECISION=%d ниже 28, используется 28", cfg.Calc.Precision)
	}
	return cfg, nil
}

// Usage печатает список переменных окружения конфига.
func Usage() error {
	var cfg Config
	return envconfig.Usage(AppName, &cfg)
}
