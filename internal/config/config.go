package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries the process settings. Everything is optional with local
// defaults; the builder runs with no environment at all.
type Config struct {
	HTTPPort   string
	ChromePath string
	DataDir    string

	PreviewDebounce  time.Duration
	AutosaveDebounce time.Duration
}

func Load() Config {
	return Config{
		HTTPPort:         opt("PORT", "3000"),
		ChromePath:       opt("CHROME_PATH", ""),
		DataDir:          opt("RESUME_DATA_DIR", "resume-data"),
		PreviewDebounce:  optMillis("PREVIEW_DEBOUNCE_MS", 1000),
		AutosaveDebounce: optMillis("AUTOSAVE_DEBOUNCE_MS", 1000),
	}
}

func opt(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func optMillis(key string, fallback int) time.Duration {
	ms := fallback
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ms = n
		}
	}
	return time.Duration(ms) * time.Millisecond
}
