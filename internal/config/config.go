// Package config собирает конфигурацию сервиса из JSON файла, флагов командной строки,
// файла .env и переменных окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultServerAddress   = ":8080"
	defaultLogLevel        = "info"
	defaultLogFile         = "app.log"
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxBodyBytes    = 10 << 20
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS"`   // Адрес для запуска HTTP-сервера
	LogLevel        string        `env:"LOG_LEVEL"`        // Уровень логирования (debug, info, warn, error)
	LogFile         string        `env:"LOG_FILE"`         // Файл журнала относительно рабочего каталога
	MaxWorkers      int           `env:"MAX_WORKERS"`      // Размер пула воркеров, 0 означает число CPU
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES"`   // Предел тела запроса после распаковки, 0 снимает ограничение
	EnableHTTPS     string        `env:"ENABLE_HTTPS"`     // Включение HTTPS
	TLSCertFile     string        `env:"TLS_CERT_FILE"`    // Путь к сертификату
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`     // Путь к приватному ключу
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"` // Время на корректную остановку сервера
	ConfigFile      string        `env:"CONFIG"`           // Путь к JSON файлу конфигурации
}

// defaultConfig возвращает конфигурацию со значениями по умолчанию
func defaultConfig() *Config {
	return &Config{
		ServerAddress:   defaultServerAddress,
		LogLevel:        defaultLogLevel,
		LogFile:         defaultLogFile,
		MaxBodyBytes:    defaultMaxBodyBytes,
		TLSCertFile:     "server.crt",
		TLSKeyFile:      "server.key",
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// NewConfig инициализирует конфигурацию из аргументов процесса и окружения.
func NewConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load собирает конфигурацию. Приоритет по возрастанию:
// значения по умолчанию, JSON файл, флаги, переменные окружения.
// Файл .env в рабочем каталоге подгружается в окружение, не перетирая уже заданные переменные.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	cfg := defaultConfig()

	// 1. Флаги разбираем в отдельную структуру, чтобы применить их поверх JSON файла
	flags := defaultConfig()
	fset := flag.NewFlagSet("batchsum", flag.ContinueOnError)
	fset.StringVar(&flags.ServerAddress, "a", flags.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	fset.StringVar(&flags.LogLevel, "l", flags.LogLevel, "Уровень логирования (env: LOG_LEVEL)")
	fset.StringVar(&flags.LogFile, "f", flags.LogFile, "Файл журнала (env: LOG_FILE)")
	fset.IntVar(&flags.MaxWorkers, "w", flags.MaxWorkers, "Размер пула воркеров, 0 - по числу CPU (env: MAX_WORKERS)")
	fset.Int64Var(&flags.MaxBodyBytes, "m", flags.MaxBodyBytes, "Предел тела запроса в байтах, 0 - без ограничения (env: MAX_BODY_BYTES)")
	fset.StringVar(&flags.EnableHTTPS, "s", flags.EnableHTTPS, "Включить HTTPS (env: ENABLE_HTTPS)")
	fset.StringVar(&flags.TLSCertFile, "cert", flags.TLSCertFile, "Путь к TLS сертификату (env: TLS_CERT_FILE)")
	fset.StringVar(&flags.TLSKeyFile, "key", flags.TLSKeyFile, "Путь к TLS ключу (env: TLS_KEY_FILE)")
	fset.DurationVar(&flags.ShutdownTimeout, "t", flags.ShutdownTimeout, "Таймаут остановки сервера (env: SHUTDOWN_TIMEOUT)")
	fset.StringVar(&flags.ConfigFile, "c", flags.ConfigFile, "Путь к JSON файлу конфигурации (env: CONFIG)")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// 2. JSON файл: путь берется из окружения или флага
	configFile := flags.ConfigFile
	if v, ok := os.LookupEnv("CONFIG"); ok {
		configFile = v
	}
	jsonCfg, err := LoadJSONConfig(configFile)
	if err != nil {
		return nil, err
	}
	jsonCfg.apply(cfg)
	cfg.ConfigFile = configFile

	// 3. Флаги
	applyFlags(cfg, flags, set)

	// 4. Переменные окружения (имеют наивысший приоритет)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.MaxWorkers < 0 {
		return nil, fmt.Errorf("max workers must not be negative, got %d", cfg.MaxWorkers)
	}
	if cfg.MaxBodyBytes < 0 {
		return nil, fmt.Errorf("max body bytes must not be negative, got %d", cfg.MaxBodyBytes)
	}

	return cfg, nil
}

// applyFlags переносит в cfg только явно заданные флаги
func applyFlags(cfg, flags *Config, set map[string]bool) {
	if set["a"] {
		cfg.ServerAddress = flags.ServerAddress
	}
	if set["l"] {
		cfg.LogLevel = flags.LogLevel
	}
	if set["f"] {
		cfg.LogFile = flags.LogFile
	}
	if set["w"] {
		cfg.MaxWorkers = flags.MaxWorkers
	}
	if set["m"] {
		cfg.MaxBodyBytes = flags.MaxBodyBytes
	}
	if set["s"] {
		cfg.EnableHTTPS = flags.EnableHTTPS
	}
	if set["cert"] {
		cfg.TLSCertFile = flags.TLSCertFile
	}
	if set["key"] {
		cfg.TLSKeyFile = flags.TLSKeyFile
	}
	if set["t"] {
		cfg.ShutdownTimeout = flags.ShutdownTimeout
	}
}

// IsHTTPSEnabled проверяет, включен ли HTTPS.
// Распознаются булевы значения strconv.ParseBool, любое другое непустое значение включает HTTPS.
func (c *Config) IsHTTPSEnabled() bool {
	if c.EnableHTTPS == "" {
		return false
	}
	if enabled, err := strconv.ParseBool(c.EnableHTTPS); err == nil {
		return enabled
	}
	return true
}
