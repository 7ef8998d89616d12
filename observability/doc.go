// Package observability provides OpenTelemetry tracing and metrics
// integration for stream drains.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-service"))
//	s := adapter.Par(src, stream.WithMetrics(metrics))
//
// Without an initialized provider every instrument is a no-op, so streams
// can always record unconditionally.
package observability
