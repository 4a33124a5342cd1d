package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const (
	meterName   = "drawbar"
	counterName = "drawbar.actions.tracked"
)

// Config configures the OpenTelemetry backed sink.
type Config struct {
	Enabled      bool
	OTLPEndpoint string // e.g. "localhost:4317"; empty keeps metrics in-process
	Insecure     bool
	Interval     time.Duration
}

// MeterSink counts events on an OpenTelemetry Int64Counter with
// category, action and label attributes.
type MeterSink struct {
	counter metric.Int64Counter
	logger  *slog.Logger
}

// NewMeterSink creates a sink recording on the given meter.
func NewMeterSink(meter metric.Meter, logger *slog.Logger) (*MeterSink, error) {
	counter, err := meter.Int64Counter(counterName,
		metric.WithDescription("Number of tracked action events"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MeterSink{counter: counter, logger: logger.With("component", "analytics")}, nil
}

// Track implements Sink.
func (s *MeterSink) Track(ctx context.Context, ev Event) {
	s.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", ev.Category),
		attribute.String("action", ev.Action),
		attribute.String("label", ev.Label),
	))
	s.logger.DebugContext(ctx, "tracked", "category", ev.Category, "action", ev.Action, "label", ev.Label)
}

// Provider owns the meter provider backing a MeterSink.
type Provider struct {
	meterProvider *sdkmetric.MeterProvider
	sink          Sink
	logger        *slog.Logger
}

// New builds the analytics provider. A disabled config yields a Nop sink.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Provider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Provider{sink: Nop{}, logger: logger.With("component", "analytics")}

	if !cfg.Enabled {
		p.logger.InfoContext(ctx, "analytics disabled")
		return p, nil
	}

	res := resource.NewSchemaless(attribute.String("service.name", meterName))
	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}

	if cfg.OTLPEndpoint != "" {
		expOpts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint)}
		if cfg.Insecure {
			expOpts = append(expOpts, otlpmetricgrpc.WithInsecure())
		}
		exporter, err := otlpmetricgrpc.New(ctx, expOpts...)
		if err != nil {
			return nil, fmt.Errorf("create metric exporter: %w", err)
		}
		interval := cfg.Interval
		if interval <= 0 {
			interval = 15 * time.Second
		}
		opts = append(opts, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval)),
		))
	}

	p.meterProvider = sdkmetric.NewMeterProvider(opts...)
	sink, err := NewMeterSink(p.meterProvider.Meter(meterName), logger)
	if err != nil {
		return nil, err
	}
	p.sink = sink

	p.logger.InfoContext(ctx, "analytics initialized",
		"endpoint", cfg.OTLPEndpoint,
		"insecure", cfg.Insecure,
	)
	return p, nil
}

// Sink returns the event sink.
func (p *Provider) Sink() Sink {
	return p.sink
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	if err := p.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown meter provider: %w", err)
	}
	return nil
}
