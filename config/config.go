package config

import (
	"os"
)

// GetConfig собирает конфигурацию только из переменных окружения,
// когда yaml-файл не задан.
func GetConfig() *AppConfig {
	config := &AppConfig{
		API: PanelAPIConfig{
			BaseURL: getEnv("PANEL_API_BASE_URL", "http://localhost:8080/api"),
		},
		MetricsAddr: getEnv("PANEL_METRICS_ADDR", ":9090"),
	}
	config.ApplyDefaults()
	return config
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
