package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/metrics"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// VerificationResult is the outcome of an image verification.
type VerificationResult struct {
	Report *domain.Report
	Status string
	Label  domain.VerificationLabel
}

// VerificationService checks report images with a vision model and records
// the verdict on the report.
type VerificationService struct {
	reports  ports.ReportRepository
	fetcher  ports.ImageFetcher
	analyzer ports.ImageAnalyzer
	events   ports.EventPublisher
	metrics  *metrics.Metrics
	executor *Executor
	clock    clockwork.Clock
	logger   *slog.Logger
}

// VerificationServiceConfig holds the VerificationService dependencies.
type VerificationServiceConfig struct {
	Reports  ports.ReportRepository
	Fetcher  ports.ImageFetcher
	Analyzer ports.ImageAnalyzer
	Events   ports.EventPublisher
	Metrics  *metrics.Metrics
	Clock    clockwork.Clock
	Logger   *slog.Logger
}

// NewVerificationService creates a VerificationService.
func NewVerificationService(cfg VerificationServiceConfig) *VerificationService {
	logger := orDefaultLogger(cfg.Logger).With(slog.String("component", "app.VerificationService"))
	clock := orRealClock(cfg.Clock)

	return &VerificationService{
		reports:  cfg.Reports,
		fetcher:  cfg.Fetcher,
		analyzer: cfg.Analyzer,
		events:   cfg.Events,
		metrics:  cfg.Metrics,
		executor: NewExecutor(logger, clock),
		clock:    clock,
		logger:   logger,
	}
}

// VerifyImage downloads req.ImageURL, asks the analyzer for an assessment
// and stores the verdict on the report.
func (s *VerificationService) VerifyImage(ctx context.Context, req domain.VerifyImageRequest) (*VerificationResult, error) {
	var updated *domain.Report

	op := Operation[domain.VerifyImageRequest, *domain.ImageAssessment, domain.ImageAssessment, *VerificationResult]{
		Name: "verify_image",

		Validate: func(ctx context.Context, req domain.VerifyImageRequest) error {
			if err := req.Validate(); err != nil {
				return err
			}
			report, err := s.reports.Get(ctx, req.ReportID)
			if err != nil {
				return err
			}
			if req.DisasterID != "" && report.DisasterID != req.DisasterID {
				return domain.NewNotFoundError("report", req.ReportID)
			}
			return nil
		},

		Perform: func(ctx context.Context, req domain.VerifyImageRequest) (*domain.ImageAssessment, error) {
			img, err := s.fetcher.FetchImage(ctx, req.ImageURL)
			if err != nil {
				return nil, upstreamFailure("image-fetch", err)
			}
			assessment, err := s.analyzer.AnalyzeImage(ctx, img)
			if err != nil {
				return nil, upstreamFailure("gemini", err)
			}
			return assessment, nil
		},

		Verify: func(_ context.Context, _ domain.VerifyImageRequest, a *domain.ImageAssessment) (domain.ImageAssessment, error) {
			if a == nil || strings.TrimSpace(a.Text) == "" {
				return domain.ImageAssessment{}, domain.NewUnavailableError("gemini", "empty image assessment")
			}
			return domain.ImageAssessment{Text: strings.TrimSpace(a.Text)}, nil
		},

		Archive: func(ctx context.Context, req domain.VerifyImageRequest, a domain.ImageAssessment) error {
			entry := domain.NewAuditEntry(domain.AuditVerifyImage, req.UserID, s.clock.Now())
			entry.Label = a.Label()
			entry.ImageURL = req.ImageURL

			var err error
			updated, err = s.reports.RecordVerification(ctx, req.ReportID, domain.ReportVerification{
				Status: a.Text,
				Label:  a.Label(),
				Entry:  entry,
			})
			return err
		},

		Respond: func(ctx context.Context, _ domain.VerifyImageRequest, a domain.ImageAssessment) (*VerificationResult, error) {
			label := a.Label()
			if s.metrics != nil {
				s.metrics.ImageVerifications.WithLabelValues(string(label)).Inc()
			}
			publish(ctx, s.events, requestLogger(ctx, s.logger, "VerifyImage"),
				domain.NewReportUpdatedEvent(updated, s.clock.Now()))

			return &VerificationResult{Report: updated, Status: a.Text, Label: label}, nil
		},
	}

	return Execute(ctx, s.executor, op, req)
}

// upstreamFailure keeps an upstream "not found" or "invalid" answer from
// reaching the caller as a client error.
func upstreamFailure(service string, err error) error {
	if domain.IsUserFacing(err) {
		return domain.NewUnavailableError(service, err.Error())
	}
	return err
}
