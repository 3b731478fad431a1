package render

import (
	"context"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"go.uber.org/zap"
)

// LogSink пишет итог каждого прохода в лог
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Render(_ context.Context, result model.ScanResult, settings model.Settings) {
	fields := []zap.Field{
		zap.String("today", result.Today),
		zap.Int("upcoming", result.Count(model.StatusUpcoming)),
		zap.Int("ongoing", result.Count(model.StatusOngoing)),
		zap.Int("ended", result.Count(model.StatusEnded)),
		zap.Int("skipped", result.Skipped),
	}
	if banner, ok := Banner(result, settings); ok {
		fields = append(fields, zap.String("banner", banner))
	}

	s.logger.Info("Schedule scanned", fields...)

	for _, row := range result.Rows {
		s.logger.Debug("Class status", zap.Int("row", row.Entry.RowIndex), zap.String("line", RowLine(row, settings)))
	}
}
