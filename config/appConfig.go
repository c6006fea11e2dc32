package config

import (
	"gopkg.in/yaml.v3"
	"os"

	"commerceadmin_api/config/values"
)

type Config interface {
}

type PanelAPIConfig struct {
	BaseURL        string  `yaml:"base_url"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateBurst      int     `yaml:"rate_burst"`
}

type AppConfig struct {
	API         PanelAPIConfig     `yaml:"api"`
	MetricsAddr string             `yaml:"metrics_addr"`
	Panel       values.PanelLimits `yaml:"panel"`
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := &AppConfig{}
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	config.ApplyDefaults()
	return config, nil
}

// ApplyDefaults заполняет незаданные поля значениями по умолчанию
// и переменными окружения.
func (c *AppConfig) ApplyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = getEnv("PANEL_API_BASE_URL", "http://localhost:8080/api")
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 30
	}
	if c.API.RateLimitRPS <= 0 {
		c.API.RateLimitRPS = 10
	}
	if c.API.RateBurst <= 0 {
		c.API.RateBurst = 5
	}
	if c.MetricsAddr == "" {
		c.MetricsAddr = getEnv("PANEL_METRICS_ADDR", ":9090")
	}
	c.Panel.ApplyDefaults()
}
