package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONConfig описывает JSON файл конфигурации. Отсутствующие поля не меняют значения.
type JSONConfig struct {
	ServerAddress   *string `json:"server_address"`
	LogLevel        *string `json:"log_level"`
	LogFile         *string `json:"log_file"`
	MaxWorkers      *int    `json:"max_workers"`
	MaxBodyBytes    *int64  `json:"max_body_bytes"`
	EnableHTTPS     *bool   `json:"enable_https"`
	TLSCertFile     *string `json:"tls_cert_file"`
	TLSKeyFile      *string `json:"tls_key_file"`
	ShutdownTimeout *string `json:"shutdown_timeout"` // В формате time.ParseDuration, например "5s"
}

// LoadJSONConfig читает JSON файл конфигурации. Пустое имя дает пустую конфигурацию.
func LoadJSONConfig(filename string) (*JSONConfig, error) {
	cfg := &JSONConfig{}
	if filename == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", filename, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", filename, err)
	}

	if cfg.ShutdownTimeout != nil {
		if _, err := time.ParseDuration(*cfg.ShutdownTimeout); err != nil {
			return nil, fmt.Errorf("error parsing shutdown_timeout in %s: %w", filename, err)
		}
	}

	return cfg, nil
}

// apply переносит заданные в файле значения в конфигурацию
func (j *JSONConfig) apply(cfg *Config) {
	if j.ServerAddress != nil {
		cfg.ServerAddress = *j.ServerAddress
	}
	if j.LogLevel != nil {
		cfg.LogLevel = *j.LogLevel
	}
	if j.LogFile != nil {
		cfg.LogFile = *j.LogFile
	}
	if j.MaxWorkers != nil {
		cfg.MaxWorkers = *j.MaxWorkers
	}
	if j.MaxBodyBytes != nil {
		cfg.MaxBodyBytes = *j.MaxBodyBytes
	}
	if j.EnableHTTPS != nil {
		if *j.EnableHTTPS {
			cfg.EnableHTTPS = "true"
		} else {
			cfg.EnableHTTPS = ""
		}
	}
	if j.TLSCertFile != nil {
		cfg.TLSCertFile = *j.TLSCertFile
	}
	if j.TLSKeyFile != nil {
		cfg.TLSKeyFile = *j.TLSKeyFile
	}
	if j.ShutdownTimeout != nil {
		// Формат уже проверен в LoadJSONConfig
		if d, err := time.ParseDuration(*j.ShutdownTimeout); err == nil {
			cfg.ShutdownTimeout = d
		}
	}
}
