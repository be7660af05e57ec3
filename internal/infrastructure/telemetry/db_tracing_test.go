package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type tracedRow struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tracedRow{}))
	return db
}

func setupRecorder(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})
	return tp, sr
}

func attrMap(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestDefaultDBTracingConfig(t *testing.T) {
	cfg := DefaultDBTracingConfig()
	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.LogFullSQL)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThresh)
	assert.Equal(t, "postgresql", cfg.DBSystem)
}

func TestRegisterDBTracing_Disabled(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, RegisterDBTracing(db, DefaultDBTracingConfig(), zap.NewNop()))
	assert.Nil(t, db.Callback().Query().Get("brandkit:annotate_query"))
}

func TestRegisterDBTracing_EmitsQuerySpans(t *testing.T) {
	_, sr := setupRecorder(t)
	db := setupTestDB(t)
	cfg := DefaultDBTracingConfig()
	cfg.Enabled = true
	cfg.DBSystem = "sqlite"
	require.NoError(t, RegisterDBTracing(db, cfg, zap.NewNop()))

	ctx, parent := otel.Tracer("test").Start(context.Background(), "request")
	require.NoError(t, db.WithContext(ctx).Create(&tracedRow{Name: "acme"}).Error)
	var found tracedRow
	require.NoError(t, db.WithContext(ctx).First(&found, "name = ?", "acme").Error)
	parent.End()

	spans := sr.Ended()
	require.GreaterOrEqual(t, len(spans), 3)
	for _, s := range spans[:len(spans)-1] {
		assert.Equal(t, parent.SpanContext().TraceID(), s.SpanContext().TraceID())
	}
}

func TestRegisterDBTracing_DoubleRegistrationFails(t *testing.T) {
	db := setupTestDB(t)
	cfg := DefaultDBTracingConfig()
	cfg.Enabled = true
	require.NoError(t, RegisterDBTracing(db, cfg, zap.NewNop()))
	assert.Error(t, RegisterDBTracing(db, cfg, zap.NewNop()))
}

func TestAnnotateSpan(t *testing.T) {
	tp, sr := setupRecorder(t)
	db := setupTestDB(t)

	ctx, span := tp.Tracer("test").Start(context.Background(), "insert")
	ctx = context.WithValue(ctx, queryStartKey{}, time.Now().Add(-time.Second))
	result := db.WithContext(ctx).Create(&[]tracedRow{{Name: "a"}, {Name: "b"}})
	require.NoError(t, result.Error)

	annotateSpan(result, 100*time.Millisecond)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := attrMap(spans[0])
	assert.Equal(t, int64(2), attrs["db.rows_affected"].AsInt64())
	assert.Equal(t, "traced_rows", attrs["db.sql.table"].AsString())
	assert.True(t, attrs["db.slow_query"].AsBool())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestAnnotateSpan_RecordsErrorsButNotMisses(t *testing.T) {
	tp, sr := setupRecorder(t)
	db := setupTestDB(t)

	ctx, span := tp.Tracer("test").Start(context.Background(), "lookup")
	miss := db.WithContext(ctx).First(&tracedRow{}, "name = ?", "nobody")
	require.ErrorIs(t, miss.Error, gorm.ErrRecordNotFound)
	annotateSpan(miss, time.Hour)
	span.End()

	ctx, failing := tp.Tracer("test").Start(context.Background(), "broken")
	broken := db.WithContext(ctx)
	_ = broken.AddError(errors.New("disk full"))
	annotateSpan(broken, time.Hour)
	failing.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "disk full", spans[1].Status().Description)
}

func TestAnnotateSpan_NoRecordingSpan(t *testing.T) {
	db := setupTestDB(t)
	assert.NotPanics(t, func() {
		annotateSpan(db.WithContext(context.Background()), time.Millisecond)
		annotateSpan(db, time.Millisecond)
	})
}
