package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-feels-backend/internal/config"
	"movie-feels-backend/internal/recommend"

	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
	"google.golang.org/genai"
)

// ErrRankerDisabled is returned when no model API key is configured.
var ErrRankerDisabled = errors.New("title ranker is disabled")

type RerankInput struct {
	Notes      string
	Preference string
	Candidates []recommend.Candidate
}

// TitleRanker asks a language model which candidates fit the user's note.
// It returns lowercase titles, best first. Implementations make exactly one
// attempt per call.
type TitleRanker interface {
	RankTitles(ctx context.Context, input RerankInput) ([]string, error)
}

type disabledRanker struct{}

func (disabledRanker) RankTitles(context.Context, RerankInput) ([]string, error) {
	return nil, ErrRankerDisabled
}

type generateFunc func(ctx context.Context, prompt string) (string, error)

// GeminiRanker ranks candidate titles with a Gemini model. Calls go through a
// circuit breaker so a failing model is skipped instead of waited on.
type GeminiRanker struct {
	generate generateFunc
	timeout  time.Duration
	cb       *gobreaker.CircuitBreaker[string]
	logger   *logrus.Logger
}

// NewTitleRanker returns a Gemini backed ranker, or a disabled one when
// cfg has no API key.
func NewTitleRanker(ctx context.Context, cfg config.GeminiConfig, logger *logrus.Logger) (TitleRanker, error) {
	if cfg.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, recommendations will use mood scores only")
		return disabledRanker{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.Model
	generate := func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}

	logger.WithField("model", model).Info("Gemini title ranker initialized")
	return newGeminiRanker(generate, cfg.Timeout, logger), nil
}

func newGeminiRanker(generate generateFunc, timeout time.Duration, logger *logrus.Logger) *GeminiRanker {
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "gemini-ranker",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &GeminiRanker{
		generate: generate,
		timeout:  timeout,
		cb:       cb,
		logger:   logger,
	}
}

func (r *GeminiRanker) RankTitles(ctx context.Context, input RerankInput) ([]string, error) {
	prompt, err := recommend.BuildPrompt(input.Notes, input.Preference, input.Candidates)
	if err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := r.cb.Execute(func() (string, error) {
		return r.generate(ctx, prompt)
	})
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	titles := recommend.ParseTitles(reply)
	r.logger.WithFields(logrus.Fields{
		"candidates": len(input.Candidates),
		"selected":   len(titles),
		"latency":    time.Since(start).String(),
	}).Debug("Gemini ranked titles")

	return titles, nil
}
