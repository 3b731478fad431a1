package render

import (
	"context"
	"testing"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sink := NewLogSink(zap.New(core))

	sink.Render(context.Background(), dayResult(), model.DefaultSettings())

	summary := logs.FilterMessage("Schedule scanned").All()
	if assert.Len(t, summary, 1) {
		fields := summary[0].ContextMap()
		assert.Equal(t, "mon", fields["today"])
		assert.Equal(t, int64(1), fields["upcoming"])
		assert.Equal(t, int64(1), fields["ongoing"])
		assert.Equal(t, int64(1), fields["ended"])
		assert.Equal(t, int64(1), fields["skipped"])
		assert.Equal(t, "📌 Next: Physics in 1h 30m • Lab B", fields["banner"])
	}
	assert.Equal(t, 3, logs.FilterMessage("Class status").Len())
}
