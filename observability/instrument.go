package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/pipeline"
)

// Enumeration outcomes recorded on the enumerations counter and the span.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusAbandoned = "abandoned"
)

type instrumentConfig struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

// InstrumentOption customizes Instrument.
type InstrumentOption func(*instrumentConfig)

// WithTracer sets the tracer used for enumeration spans. The default is
// the package tracer on the global provider.
func WithTracer(t trace.Tracer) InstrumentOption {
	return func(c *instrumentConfig) { c.tracer = t }
}

// WithSpanAttributes adds attributes to every enumeration span.
func WithSpanAttributes(attrs ...attribute.KeyValue) InstrumentOption {
	return func(c *instrumentConfig) { c.attrs = append(c.attrs, attrs...) }
}

// Instrument wraps p so that every enumeration is traced and measured.
// A span starts when the enumeration is created and ends when it is
// closed; values, errors and the final status are recorded as they pass
// through Next. m may be nil to trace without metrics.
//
// Nothing is recorded in the background: an enumeration that is never
// closed never ends its span.
func Instrument[T any](p *pipeline.Pipeline[T], name string, m *Metrics, opts ...InstrumentOption) *pipeline.Pipeline[T] {
	cfg := instrumentConfig{tracer: Tracer(defaultTracerName)}
	for _, opt := range opts {
		opt(&cfg)
	}
	attrs := append([]attribute.KeyValue{attribute.String(AttrPipeline, name)}, cfg.attrs...)

	return pipeline.FromFunc(func(ctx context.Context) pipeline.Iterator[T] {
		spanCtx, span := cfg.tracer.Start(ctx, SpanEnumeration, trace.WithAttributes(attrs...))
		return &instrumentedIter[T]{
			source:  p.Iter(spanCtx),
			name:    name,
			metrics: m,
			span:    span,
			ctx:     spanCtx,
			start:   time.Now(),
			status:  StatusAbandoned,
		}
	})
}

type instrumentedIter[T any] struct {
	source  pipeline.Iterator[T]
	name    string
	metrics *Metrics
	span    trace.Span
	ctx     context.Context
	start   time.Time
	count   int64
	status  string
	done    bool
	closed  bool
}

func (it *instrumentedIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	switch {
	case err != nil:
		if !it.done {
			it.done, it.status = true, StatusFailed
			it.span.RecordError(err)
			it.span.SetStatus(codes.Error, err.Error())
			if it.metrics != nil {
				it.metrics.RecordError(it.ctx, it.name, err)
			}
		}
	case !ok:
		if !it.done {
			it.done, it.status = true, StatusCompleted
		}
	default:
		it.count++
		if it.metrics != nil {
			it.metrics.RecordElements(it.ctx, it.name, 1)
		}
	}
	return val, ok, err
}

func (it *instrumentedIter[T]) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true

	err := it.source.Close()
	it.span.SetAttributes(
		attribute.Int64(AttrElements, it.count),
		attribute.String(AttrStatus, it.status),
	)
	it.span.End()
	if it.metrics != nil {
		it.metrics.RecordEnumeration(it.ctx, it.name, it.status, time.Since(it.start))
	}
	return err
}
