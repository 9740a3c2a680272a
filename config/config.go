package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	LogLevel  string
	MenuPath  string
	StatePath string
	ImportDir string
	ExportDir string
}

// New loads configuration from environment variables
func New() Config {
	return Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		MenuPath:  getEnv("MENU_PATH", "menu/menu.json"),
		StatePath: getEnv("STATE_PATH", ".state.json"),
		ImportDir: getEnv("IMPORT_DIR", "import"),
		ExportDir: getEnv("EXPORT_DIR", "export"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
