package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvironment        = "development"
	defaultTableSelector      = "#mainContent_grdClasses"
	defaultMigrationsPath     = "migrations"
	defaultHTTPTimeoutSeconds = 15
)

type Config struct {
	Environment string

	// Страница с таблицей: URL или сохранённый файл
	ScheduleURL   string
	ScheduleFile  string
	TableSelector string
	HTTPTimeout   time.Duration
	Location      *time.Location

	// Пустой DBDSN: настройки живут в памяти процесса
	DBDSN          string
	MigrationsPath string

	TelegramToken  string
	TelegramChatID int64

	ShoutrrrURLs []string
	MetricsAddr  string
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv()
}

// FromEnv читает конфигурацию из переменных окружения
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment:    getEnv("ENV", defaultEnvironment),
		ScheduleURL:    strings.TrimSpace(os.Getenv("SCHEDULE_URL")),
		ScheduleFile:   strings.TrimSpace(os.Getenv("SCHEDULE_FILE")),
		TableSelector:  getEnv("TABLE_SELECTOR", defaultTableSelector),
		HTTPTimeout:    time.Duration(getPositiveInt("HTTP_TIMEOUT_SECONDS", defaultHTTPTimeoutSeconds)) * time.Second,
		DBDSN:          os.Getenv("DB_DSN"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", defaultMigrationsPath),
		TelegramToken:  strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		ShoutrrrURLs:   splitList(os.Getenv("SHOUTRRR_URLS")),
		MetricsAddr:    strings.TrimSpace(os.Getenv("METRICS_ADDR")),
	}

	location, err := loadLocation(os.Getenv("TIMEZONE"))
	if err != nil {
		return nil, err
	}
	cfg.Location = location

	if v := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); v != "" {
		chatID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.New("TELEGRAM_CHAT_ID must be an integer")
		}
		cfg.TelegramChatID = chatID
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные и парные поля
func (c *Config) Validate() error {
	if c.ScheduleURL == "" && c.ScheduleFile == "" {
		return errors.New("SCHEDULE_URL or SCHEDULE_FILE is required but not set")
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == 0) {
		return errors.New("TELEGRAM_TOKEN and TELEGRAM_CHAT_ID must be set together")
	}
	return nil
}

// TelegramEnabled включён ли чат управления
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getPositiveInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func loadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.New("TIMEZONE is not a valid IANA time zone: " + name)
	}
	return location, nil
}
