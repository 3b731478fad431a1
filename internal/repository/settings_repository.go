package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/class_highlighter/internal/repository/base"
)

// SettingsRepository key-value хранилище настроек в PostgreSQL
type SettingsRepository struct {
	*base.Repository
}

func NewSettingsRepository(repo *base.Repository) *SettingsRepository {
	return &SettingsRepository{Repository: repo}
}

// Get получает значение по ключу; found = false если ключа нет
func (r *SettingsRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM settings
		WHERE key = $1
	`

	var value string
	err := r.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get setting %q: %w", key, err)
	}

	return []byte(value), true, nil
}

// Set сохраняет значение по ключу (upsert)
func (r *SettingsRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	affected, err := r.ExecAffected(ctx, query, key, string(value))
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	if affected == 0 {
		return fmt.Errorf("set setting %q: no rows affected", key)
	}

	return nil
}
