// Package service orchestrates certificate issuance and verification. It is
// the only place where the allocator, the canonical hasher, the ledger and
// the record store meet; handlers stay thin and collaborators stay dumb.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"signet/internal/assets"
	"signet/internal/audit"
	"signet/internal/certificate/sequence"
	"signet/internal/certificate/store"
	"signet/internal/ledger"
	"signet/internal/platform/metrics"
)

// Service coordinates the issuance and verification protocol.
type Service struct {
	store     store.Store
	allocator sequence.Allocator
	ledger    ledger.Client
	assets    assets.Store
	audit     audit.Store
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer

	now func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the wall clock. Tests pin issuance timestamps with it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(
	st store.Store,
	allocator sequence.Allocator,
	lc ledger.Client,
	as assets.Store,
	au audit.Store,
	logger *slog.Logger,
	m *metrics.Metrics,
	opts ...Option,
) *Service {
	s := &Service{
		store:     st,
		allocator: allocator,
		ledger:    lc,
		assets:    as,
		audit:     au,
		logger:    logger,
		metrics:   m,
		tracer:    otel.Tracer("signet/certificate"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) auditEvent(ctx context.Context, event audit.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now().UTC()
	}
	if err := s.audit.Append(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit append failed",
			"action", event.Action,
			"certificate_number", event.CertificateNumber,
			"error", err,
		)
	}
}

func span(tracer trace.Tracer, ctx context.Context, name, number string) (context.Context, trace.Span) {
	ctx, sp := tracer.Start(ctx, name)
	if number != "" {
		sp.SetAttributes(attribute.String("certificate.number", number))
	}
	return ctx, sp
}
