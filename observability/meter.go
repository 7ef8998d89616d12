package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/streamkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the embedding service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for stream drains.
type Metrics struct {
	drainTotal     metric.Int64Counter
	drainDuration  metric.Float64Histogram
	drainActive    metric.Int64UpDownCounter
	elementTotal   metric.Int64Counter
	partitionCount metric.Int64Histogram
	errorTotal     metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	drainTotal, err := meter.Int64Counter("stream.drain.total",
		metric.WithDescription("Total number of terminal drains"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.drain.total counter: %w", err)
	}

	drainDuration, err := meter.Float64Histogram("stream.drain.duration",
		metric.WithDescription("Duration of terminal drains in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.drain.duration histogram: %w", err)
	}

	drainActive, err := meter.Int64UpDownCounter("stream.drain.active",
		metric.WithDescription("Number of currently running drains"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.drain.active gauge: %w", err)
	}

	elementTotal, err := meter.Int64Counter("stream.element.total",
		metric.WithDescription("Total elements produced by terminal drains"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.element.total counter: %w", err)
	}

	partitionCount, err := meter.Int64Histogram("stream.drain.partitions",
		metric.WithDescription("Partitions folded per parallel drain"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.drain.partitions histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("stream.error.total",
		metric.WithDescription("Total drain errors by operation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.error.total counter: %w", err)
	}

	return &Metrics{
		drainTotal:     drainTotal,
		drainDuration:  drainDuration,
		drainActive:    drainActive,
		elementTotal:   elementTotal,
		partitionCount: partitionCount,
		errorTotal:     errorTotal,
	}, nil
}

// RecordDrainStart increments the active drain count.
func (m *Metrics) RecordDrainStart(ctx context.Context) {
	m.drainActive.Add(ctx, 1)
}

// RecordDrainEnd decrements active drains and records the completed drain.
func (m *Metrics) RecordDrainEnd(ctx context.Context, op, mode, status string, elements, partitions int64, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("mode", mode),
		attribute.String("status", status),
	)
	m.drainActive.Add(ctx, -1)
	m.drainTotal.Add(ctx, 1, attrs)
	m.elementTotal.Add(ctx, elements, attrs)
	m.partitionCount.Record(ctx, partitions, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("mode", mode),
	))
	m.drainDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("mode", mode),
	))
}

// RecordError records a drain error by operation.
func (m *Metrics) RecordError(ctx context.Context, op string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
	))
}
