package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/kin/internal/adapters/telemetry"
	"go.trai.ch/kin/internal/core/ports"
	"go.trai.ch/kin/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_Span(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	tracer := telemetry.NewOTelTracer(tp)
	_, span := tracer.Start(t.Context(), "expand", ports.WithNodeID("group-2"))
	span.SetAttribute("expanded", true)
	span.SetAttribute("children", 2)
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	got := spans[0]
	assert.Equal(t, "expand", got.Name())
	assert.Contains(t, got.Attributes(), attribute.String("kin.node_id", "group-2"))
	assert.Contains(t, got.Attributes(), attribute.Bool("expanded", true))
	assert.Contains(t, got.Attributes(), attribute.Int("children", 2))
	assert.Equal(t, codes.Error, got.Status().Code)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(t.Context(), "anything")
	assert.Equal(t, t.Context(), ctx)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestNewProvider_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	tp := telemetry.NewProvider(mockLogger)
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	tracer := telemetry.NewOTelTracer(tp)

	_, ok := tracer.Start(t.Context(), "drag")
	ok.End()

	_, failed := tracer.Start(t.Context(), "submit")
	failed.RecordError(errors.New("no node selected"))
	failed.End()
}
