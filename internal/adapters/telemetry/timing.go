package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/slswebpack/internal/core/ports"
)

const tracePrefix = "[Trace]"

// TimingProcessor is a span processor that logs every ended span with its duration.
type TimingProcessor struct {
	logger ports.Logger
}

var _ sdktrace.SpanProcessor = (*TimingProcessor)(nil)

// NewTimingProcessor creates a new TimingProcessor.
func NewTimingProcessor(logger ports.Logger) *TimingProcessor {
	return &TimingProcessor{logger: logger}
}

// OnStart implements sdktrace.SpanProcessor.
func (p *TimingProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span. Failed spans are logged as warnings with their status message.
func (p *TimingProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime()).Milliseconds()
	if s.Status().Code == codes.Error {
		p.logger.Warn(fmt.Sprintf("%s %s failed in %dms: %s", tracePrefix, s.Name(), elapsed, s.Status().Description))
		return
	}
	p.logger.Info(fmt.Sprintf("%s %s took %dms", tracePrefix, s.Name(), elapsed))
}

// Shutdown implements sdktrace.SpanProcessor.
func (p *TimingProcessor) Shutdown(context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (p *TimingProcessor) ForceFlush(context.Context) error { return nil }
