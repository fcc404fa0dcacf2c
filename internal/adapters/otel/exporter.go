package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/tourneytally/internal/infrastructure/config"
	"github.com/emiliopalmerini/tourneytally/internal/ports"
)

const (
	serviceName    = "tourneytally"
	serviceVersion = "1.0.0"

	// RunIDKey identifies one tallying run on every exported series.
	RunIDKey = attribute.Key("tourneytally.run_id")
	// PlayerKey labels the per-player win counter.
	PlayerKey = attribute.Key("tourneytally.player")
	// SourceKey is the session log a tally was read from.
	SourceKey = attribute.Key("tourneytally.source")
)

// Exporter pushes tally results to an OTEL Collector over OTLP/gRPC.
type Exporter struct {
	provider *sdkmetric.MeterProvider
	sessions metric.Int64Counter
	wins     metric.Int64Counter
}

// NewExporter connects to the collector configured in cfg. All series
// carry runID as a resource attribute.
func NewExporter(ctx context.Context, cfg config.OTel, runID string) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts,
			otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
			otlpmetricgrpc.WithInsecure())
	}

	otlp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	// Each run is a single pass, so only the flush on Close matters.
	return newExporter(ctx, runID, sdkmetric.NewPeriodicReader(otlp))
}

func newExporter(ctx context.Context, runID string, reader sdkmetric.Reader) (*Exporter, error) {
	res, err := runResource(ctx, runID)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)
	meter := provider.Meter(serviceName)

	sessions, err := meter.Int64Counter(
		"tourneytally_sessions_total",
		metric.WithDescription("Sessions read from the log"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions counter: %w", err)
	}

	wins, err := meter.Int64Counter(
		"tourneytally_wins_total",
		metric.WithDescription("Sessions won, per player"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating wins counter: %w", err)
	}

	return &Exporter{provider: provider, sessions: sessions, wins: wins}, nil
}

func runResource(ctx context.Context, runID string) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
			RunIDKey.String(runID),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

// ExportTally records the session total and every player's wins.
func (e *Exporter) ExportTally(ctx context.Context, m *ports.TallyMetrics) error {
	source := SourceKey.String(m.Source)

	e.sessions.Add(ctx, m.Sessions, metric.WithAttributes(source))
	for _, wc := range m.Wins {
		e.wins.Add(ctx, wc.Wins, metric.WithAttributes(source, PlayerKey.String(string(wc.Player))))
	}
	return nil
}

// Close flushes pending points and shuts the provider down.
func (e *Exporter) Close(ctx context.Context) error {
	if err := e.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down meter provider: %w", err)
	}
	return nil
}
