// Package observability wires OpenTelemetry tracing and metrics into
// seqkit pipelines.
//
// Instrument wraps a pipeline so each enumeration gets a span and feeds
// the pipeline.* instruments:
//
//	mp, err := observability.InitMeter(ctx, &meterCfg)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("seqkit"))
//	p = observability.Instrument(p, "ranked", metrics)
//
// Exporters use OTLP over HTTP. Tests can pass a ManualReader-backed meter
// and a SpanRecorder-backed tracer instead of calling InitMeter/InitTracer.
package observability
