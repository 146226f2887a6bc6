package config

import "os"

type Config struct {
	ListenAddr       string
	GeneratorBackend string
	GeminiAPIKey     string
	GeminiModel      string
	ClaudeAPIKey     string
	ClaudeModel      string
	DBPath           string
	ImagePath        string
	ClipboardCmd     string
	LogLevel         string
	LogFormat        string
	LogFile          string
}

func Load() *Config {
	return &Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		GeneratorBackend: getEnv("GENERATOR_BACKEND", "gemini"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		ClaudeAPIKey:     getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:      getEnv("CLAUDE_MODEL", "claude-sonnet-4-5"),
		DBPath:           getEnv("DB_PATH", "/data/slidegen.db"),
		ImagePath:        getEnv("IMAGE_LOCAL_PATH", "/data/images"),
		ClipboardCmd:     getEnv("CLIPBOARD_CMD", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		LogFile:          getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
