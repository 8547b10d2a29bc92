package ai

import (
	"context"
	stdErrors "errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
)

// Service defines the completion relays
type Service interface {
	GenerateSummary(ctx context.Context, transcript, style string) (string, error)
	ExtractActions(ctx context.Context, transcript string) ([]*entities.ActionItem, error)
}

type aiService struct {
	completer pkgai.Completer
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

// Option customises the AI service
type Option func(*aiService)

// WithClock overrides the reference clock used for relative due dates
func WithClock(now func() time.Time) Option {
	return func(s *aiService) { s.now = now }
}

// WithMetrics records relay outcomes on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *aiService) { s.metrics = m }
}

// NewAIService constructs a new AI service
func NewAIService(completer pkgai.Completer, logger *zap.Logger, opts ...Option) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &aiService{
		completer: completer,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateSummary returns the raw completion for a style-specific note prompt
func (s *aiService) GenerateSummary(ctx context.Context, transcript, style string) (summary string, err error) {
	if strings.TrimSpace(transcript) == "" {
		return "", errors.ErrInvalidArgument("No transcript provided")
	}
	started := time.Now()
	defer func() { s.metrics.ObserveRelay("summary", started, err) }()

	style = NormalizeStyle(style)
	summary, err = s.completer.Complete(ctx, BuildSummaryPrompt(transcript, style), SummaryMaxTokensFor(style))
	if err != nil {
		if stdErrors.Is(err, pkgai.ErrNotConfigured) {
			return "", errors.ErrAINotConfigured("Groq")
		}
		s.logger.Error("summary completion failed",
			zap.String("style", style),
			zap.Error(err),
		)
		return "", errors.ErrAISummaryFailed(err)
	}

	s.logger.Info("summary generated",
		zap.String("style", style),
		zap.Int("transcript_chars", len(transcript)),
		zap.Int("summary_chars", len(summary)),
	)
	return summary, nil
}

// ExtractActions asks for a JSON action list and parses it permissively.
// An unparseable reply yields an empty list, not an error.
func (s *aiService) ExtractActions(ctx context.Context, transcript string) (actions []*entities.ActionItem, err error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, errors.ErrInvalidArgument("No transcript provided")
	}
	started := time.Now()
	defer func() { s.metrics.ObserveRelay("actions", started, err) }()

	reply, err := s.completer.Complete(ctx, BuildActionsPrompt(transcript, s.now()), ActionsMaxTokens)
	if err != nil {
		if stdErrors.Is(err, pkgai.ErrNotConfigured) {
			return nil, errors.ErrAINotConfigured("Groq")
		}
		s.logger.Error("action completion failed", zap.Error(err))
		return nil, errors.ErrAIActionsFailed(err)
	}

	actions = ParseActions(reply)
	if len(actions) == 0 {
		s.logger.Warn("no actions parsed from completion",
			zap.Int("reply_chars", len(reply)),
		)
	}
	s.metrics.ObserveActions(len(actions))
	return actions, nil
}
