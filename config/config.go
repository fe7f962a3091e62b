package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	HTTPAddr      string

	LogLevel    string
	LogFile     string
	Environment string

	MaxImageSide    int
	MaxUploadMB     int
	DetectTimeout   time.Duration
	ResultHistory   int
	ClampConfidence bool
}

// MaxUploadBytes возвращает лимит загрузки в байтах.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Validate проверяет, что хотя бы один транспорт может запуститься.
func (c *Config) Validate() error {
	if c.TelegramToken == "" && c.HTTPAddr == "" {
		return errors.New("either TELEGRAM_TOKEN or HTTP_ADDR is required")
	}
	if c.MaxUploadMB <= 0 {
		return errors.New("MAX_UPLOAD_MB must be positive")
	}
	return nil
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
		HTTPAddr:        lookupEnv("HTTP_ADDR", ":8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
		Environment:     getEnv("APP_ENV", "production"),
		MaxImageSide:    getEnvInt("MAX_IMAGE_SIDE", 1024),
		MaxUploadMB:     getEnvInt("MAX_UPLOAD_MB", 10),
		DetectTimeout:   getEnvDuration("DETECT_TIMEOUT", 15*time.Second),
		ResultHistory:   getEnvInt("RESULT_HISTORY", 100),
		ClampConfidence: getEnvBool("CLAMP_CONFIDENCE", false),
	}

	return cfg, cfg.Validate()
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// lookupEnv в отличие от getEnv принимает пустое значение: HTTP_ADDR= отключает HTTP.
func lookupEnv(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
