package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/metrics"
	"github.com/jsamuelsen/disaster-response/internal/platform/telemetry"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// Social search defaults.
const (
	DefaultMaxKeywords     = 5
	DefaultPostsPerKeyword = 10
	DefaultConcurrency     = 3
)

// SocialService searches the public feed for posts about a disaster and
// files them as pending reports.
type SocialService struct {
	disasters       ports.DisasterRepository
	reports         ports.ReportRepository
	feed            ports.SocialFeed
	events          ports.EventPublisher
	flags           ports.FeatureFlags
	metrics         *metrics.Metrics
	clock           clockwork.Clock
	logger          *slog.Logger
	maxKeywords     int
	postsPerKeyword int
	concurrency     int
}

// SocialServiceConfig holds the SocialService dependencies and limits.
// Zero limits select the package defaults.
type SocialServiceConfig struct {
	Disasters       ports.DisasterRepository
	Reports         ports.ReportRepository
	Feed            ports.SocialFeed
	Events          ports.EventPublisher
	Flags           ports.FeatureFlags
	Metrics         *metrics.Metrics
	Clock           clockwork.Clock
	Logger          *slog.Logger
	MaxKeywords     int
	PostsPerKeyword int
	Concurrency     int
}

// NewSocialService creates a SocialService.
func NewSocialService(cfg SocialServiceConfig) *SocialService {
	return &SocialService{
		disasters:       cfg.Disasters,
		reports:         cfg.Reports,
		feed:            cfg.Feed,
		events:          cfg.Events,
		flags:           cfg.Flags,
		metrics:         cfg.Metrics,
		clock:           orRealClock(cfg.Clock),
		logger:          orDefaultLogger(cfg.Logger).With(slog.String("component", "app.SocialService")),
		maxKeywords:     positiveOr(cfg.MaxKeywords, DefaultMaxKeywords),
		postsPerKeyword: positiveOr(cfg.PostsPerKeyword, DefaultPostsPerKeyword),
		concurrency:     positiveOr(cfg.Concurrency, DefaultConcurrency),
	}
}

// Fetch searches the feed with keywords derived from the disaster's title
// and tags and returns the unique posts found. Any search failure fails the
// whole fetch.
func (s *SocialService) Fetch(ctx context.Context, disasterID string) (_ []domain.SocialPost, err error) {
	ctx, span := telemetry.StartSpan(ctx, "social.fetch", attribute.String("disaster_id", disasterID))
	defer func() { telemetry.EndSpan(span, err) }()

	d, err := s.disasters.Get(ctx, disasterID)
	if err != nil {
		return nil, err
	}

	keywords := domain.SearchKeywords(d.Title, d.Tags, s.maxKeywords)
	batches, err := MapLimit(ctx, s.concurrency, keywords,
		func(ctx context.Context, kw string) ([]domain.SocialPost, error) {
			return s.feed.SearchPosts(ctx, kw, s.postsPerKeyword)
		})
	if err != nil {
		return nil, fmt.Errorf("searching feed: %w", err)
	}

	posts := domain.DedupePosts(slices.Concat(batches...))

	logger := requestLogger(ctx, s.logger, "Fetch")
	logger.InfoContext(ctx, "feed searched",
		slog.String("disaster_id", d.ID),
		slog.Any("keywords", keywords),
		slog.Int("posts", len(posts)),
	)

	if s.persistEnabled(ctx) {
		s.persist(ctx, logger, d.ID, posts)
	}
	if s.metrics != nil {
		s.metrics.SocialPostsIngested.Add(float64(len(posts)))
	}

	publish(ctx, s.events, logger, domain.NewSocialMediaUpdatedEvent(d.ID, posts, s.clock.Now()))

	return posts, nil
}

func (s *SocialService) persistEnabled(ctx context.Context) bool {
	if s.flags == nil {
		return true
	}
	return s.flags.IsEnabled(ctx, ports.FlagPersistSocialReports, true)
}

func (s *SocialService) persist(ctx context.Context, logger *slog.Logger, disasterID string, posts []domain.SocialPost) {
	if len(posts) == 0 {
		return
	}

	reports := make([]domain.NewReport, 0, len(posts))
	for _, p := range posts {
		reports = append(reports, p.AsReport(disasterID))
	}

	if _, err := s.reports.UpsertFromFeed(ctx, reports); err != nil {
		logger.WarnContext(ctx, "persisting feed reports failed",
			slog.String("disaster_id", disasterID),
			slog.Int("count", len(reports)),
			slog.Any("error", err),
		)
	}
}

func positiveOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
