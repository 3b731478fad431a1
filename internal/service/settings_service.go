package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"go.uber.org/zap"
)

// SettingsStore key-value хранилище (PostgreSQL или память)
type SettingsStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// LoadSettings собирает настройки из сохранённого JSON и никогда не падает:
// пустые или битые данные дают значения по умолчанию,
// частичные дополняются значениями по умолчанию поле за полем.
func LoadSettings(raw []byte) model.Settings {
	settings := model.DefaultSettings()
	if len(bytes.TrimSpace(raw)) == 0 {
		return settings
	}

	if err := json.Unmarshal(raw, &settings); err != nil {
		return model.DefaultSettings()
	}

	return NormalizeSettings(settings)
}

// NormalizeSettings заменяет числовые значения вне вариантов панели значениями по умолчанию.
// Иначе сохранённое огромное число переполняет time.Duration.
func NormalizeSettings(s model.Settings) model.Settings {
	if !slices.Contains(model.UpdateIntervalChoices, s.UpdateIntervalSeconds) {
		s.UpdateIntervalSeconds = model.DefaultUpdateIntervalSeconds
	}
	if !slices.Contains(model.NotifyMinutesChoices, s.NotifyMinutes) {
		s.NotifyMinutes = model.DefaultNotifyMinutes
	}
	return s
}

// ParseEnabled разбирает сохранённый флаг: выключено только явное "false"
func ParseEnabled(raw []byte, found bool) bool {
	if !found {
		return true
	}
	return string(bytes.TrimSpace(raw)) != "false"
}

// SettingsService загрузка и сохранение настроек и флага включения
type SettingsService struct {
	store  SettingsStore
	logger *zap.Logger
}

func NewSettingsService(store SettingsStore, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		store:  store,
		logger: logger,
	}
}

// Load читает настройки; ошибка хранилища даёт значения по умолчанию
func (s *SettingsService) Load(ctx context.Context) model.Settings {
	raw, found, err := s.store.Get(ctx, model.SettingsKey)
	if err != nil {
		s.logger.Warn("Failed to read settings, using defaults", zap.Error(err))
		return model.DefaultSettings()
	}
	if !found {
		return model.DefaultSettings()
	}

	return LoadSettings(raw)
}

// Save сохраняет настройки
func (s *SettingsService) Save(ctx context.Context, settings model.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := s.store.Set(ctx, model.SettingsKey, raw); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}

// Enabled читает флаг включения; по умолчанию подсветка включена
func (s *SettingsService) Enabled(ctx context.Context) bool {
	raw, found, err := s.store.Get(ctx, model.EnabledKey)
	if err != nil {
		s.logger.Warn("Failed to read enabled flag, assuming enabled", zap.Error(err))
		return true
	}
	return ParseEnabled(raw, found)
}

// SetEnabled сохраняет флаг включения
func (s *SettingsService) SetEnabled(ctx context.Context, enabled bool) error {
	if err := s.store.Set(ctx, model.EnabledKey, []byte(strconv.FormatBool(enabled))); err != nil {
		return fmt.Errorf("save enabled flag: %w", err)
	}
	return nil
}
