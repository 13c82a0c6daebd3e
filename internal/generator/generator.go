// Package generator orchestrates a keyword generation run: validation,
// quota enforcement, the completion call with retry, response parsing,
// scoring, and result shaping. It is the only part of the core with
// side effects.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"keywordforge/internal/identity"
	"keywordforge/internal/llm"
	"keywordforge/internal/metrics"
	"keywordforge/internal/models"
	"keywordforge/internal/prompt"
	"keywordforge/internal/scoring"
	"keywordforge/internal/usage"
	"keywordforge/internal/validation"
)

// Config tunes a generation Service.
type Config struct {
	FreeKeywordCount int
	ProKeywordCount  int
	MaxAttempts      int
	InitialBackoff   time.Duration
	Temperature      float64
	MaxTokens        int
}

// DefaultConfig matches the product defaults: 30 keywords free, 50 for
// pro, three attempts with 1s/2s backoff.
func DefaultConfig() Config {
	return Config{
		FreeKeywordCount: 30,
		ProKeywordCount:  50,
		MaxAttempts:      3,
		InitialBackoff:   time.Second,
		Temperature:      0.7,
		MaxTokens:        1200,
	}
}

// Request is one generation request. User is nil for anonymous visitors.
type Request struct {
	Topic    string
	Platform string
	Goal     string
	Strategy string
	User     *identity.User
}

// Result is a successful generation.
type Result struct {
	RunID     string
	Keywords  []models.ScoredKeyword
	Grouped   models.GroupedKeywords
	Count     int
	Remaining int
	IsPro     bool
	Profile   models.UserProfile
}

// Service runs generations.
type Service struct {
	client  llm.Client
	limiter *usage.Limiter
	cfg     Config

	// Injection points for tests.
	sleep     sleepFunc
	newScorer func() *scoring.Scorer
}

// New creates a generation Service.
func New(client llm.Client, limiter *usage.Limiter, cfg Config) *Service {
	return &Service{
		client:  client,
		limiter: limiter,
		cfg:     cfg,
		sleep:   sleepWithContext,
		newScorer: func() *scoring.Scorer {
			return scoring.New(rand.New(rand.NewSource(time.Now().UnixNano())))
		},
	}
}

// Generate validates the request, checks the quota, calls the model,
// and returns scored keywords sorted by Business Fit Score. The usage
// counter is incremented only after success.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	runID := uuid.NewString()
	log := slog.With("run_id", runID)

	profile, err := s.validate(&req)
	if err != nil {
		metrics.RecordGeneration("validation")
		return nil, err
	}

	status := s.limiter.Check(req.User)
	if !status.Allowed {
		metrics.RecordGeneration("quota")
		metrics.RecordQuotaRejection()
		return nil, &QuotaError{Remaining: status.Remaining}
	}

	count := s.cfg.FreeKeywordCount
	if status.IsPro {
		count = s.cfg.ProKeywordCount
	}

	log.Info("starting generation",
		"topic", req.Topic, "platform", profile.Platform, "goal", profile.Goal,
		"strategy", profile.Strategy, "level", profile.Level, "count", count)

	raw, err := s.complete(ctx, prompt.Compose(req.Topic, profile, count))
	if err != nil {
		metrics.RecordGeneration("error")
		log.Error("generation failed", "error", err)
		return nil, err
	}

	candidates := parseKeywords(raw)
	if len(candidates) == 0 {
		metrics.RecordGeneration("error")
		log.Error("model response contained no parsable keywords")
		return nil, ErrGenerationFailed
	}

	// Guarantee the fixed-size response contract: pad short lists from
	// existing entries, trim long ones.
	candidates = padKeywords(candidates, count)
	if len(candidates) > count {
		candidates = candidates[:count]
	}

	scorer := s.newScorer()
	scored := make([]models.ScoredKeyword, len(candidates))
	for i, kw := range candidates {
		scored[i] = scorer.Score(kw, profile)
	}

	// Stable sort keeps the model's ordering for tied scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].BusinessFitScore > scored[j].BusinessFitScore
	})

	// Side effect last: only successful runs consume the free run.
	if err := s.limiter.Increment(ctx, req.User); err != nil {
		// The run already succeeded; a failed metadata write costs us a
		// free run, not the user their results.
		log.Error("failed to increment usage", "error", err)
	}

	remaining := status.Remaining
	if remaining > 0 {
		remaining--
	}

	metrics.RecordGeneration("ok")
	log.Info("generation complete", "keywords", len(scored))

	return &Result{
		RunID:     runID,
		Keywords:  scored,
		Grouped:   groupByType(scored),
		Count:     len(scored),
		Remaining: remaining,
		IsPro:     status.IsPro,
		Profile:   profile,
	}, nil
}

// validate normalizes the topic and parses the profile enums,
// mutating the request's topic to its normalized form.
func (s *Service) validate(req *Request) (models.UserProfile, error) {
	req.Topic = validation.NormalizeTopic(req.Topic)
	if ok, msg := validation.ValidateTopic(req.Topic); !ok {
		return models.UserProfile{}, fmt.Errorf("%w: %s", ErrOnboardingIncomplete, msg)
	}

	platform, err := models.ParsePlatform(req.Platform)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrOnboardingIncomplete, err)
	}
	goal, err := models.ParseGoal(req.Goal)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrOnboardingIncomplete, err)
	}
	strategy, err := models.ParseStrategy(req.Strategy)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrOnboardingIncomplete, err)
	}

	return models.NewUserProfile(platform, goal, strategy), nil
}

// complete calls the completion API with sequential retry and doubling
// backoff. Only transient failures are retried; credential failures
// abort immediately.
func (s *Service) complete(ctx context.Context, userPrompt string) (string, error) {
	var raw string
	err := withRetry(ctx, s.cfg.MaxAttempts, s.cfg.InitialBackoff, s.sleep, llm.IsTransient, func() error {
		start := time.Now()
		text, err := s.client.Complete(ctx, llm.Request{
			SystemPrompt: prompt.SystemPrompt,
			UserPrompt:   userPrompt,
			Temperature:  s.cfg.Temperature,
			MaxTokens:    s.cfg.MaxTokens,
		})
		if err != nil {
			metrics.RecordLLMRequest("error", time.Since(start).Seconds())
			return err
		}
		metrics.RecordLLMRequest("ok", time.Since(start).Seconds())
		raw = text
		return nil
	})
	if err != nil {
		if llm.IsAuthError(err) {
			return "", fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return raw, nil
}

// groupByType buckets scored keywords for the grouped display. Slices
// preserve the score-sorted order.
func groupByType(keywords []models.ScoredKeyword) models.GroupedKeywords {
	var g models.GroupedKeywords
	for _, kw := range keywords {
		switch kw.Type {
		case models.TypeBuying:
			g.Buying = append(g.Buying, kw)
		case models.TypeQuestion:
			g.Question = append(g.Question, kw)
		case models.TypeComparison:
			g.Comparison = append(g.Comparison, kw)
		default:
			g.Informational = append(g.Informational, kw)
		}
	}
	return g
}
