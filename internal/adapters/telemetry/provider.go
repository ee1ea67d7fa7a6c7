package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/kin/internal/core/ports"
)

// NewProvider creates an SDK tracer provider that reports every finished span to log.
func NewProvider(log ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(&logProcessor{log: log}))
}

// logProcessor writes one log line per finished span.
type logProcessor struct {
	log ports.Logger
}

func (p *logProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *logProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	line := fmt.Sprintf("%s %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))
	for _, attr := range s.Attributes() {
		line += fmt.Sprintf(" %s=%s", attr.Key, attr.Value.Emit())
	}
	if s.Status().Code == codes.Error {
		p.log.Warn(line + ": " + s.Status().Description)
		return
	}
	p.log.Info(line)
}

func (p *logProcessor) Shutdown(context.Context) error { return nil }

func (p *logProcessor) ForceFlush(context.Context) error { return nil }
