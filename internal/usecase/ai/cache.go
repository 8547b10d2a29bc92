package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
)

// cachedCompleter memoises completions of identical prompts. Errors are never
// cached and cache failures fall through to the upstream call.
type cachedCompleter struct {
	next    pkgai.Completer
	store   cache.Store
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewCachedCompleter wraps next with a completion cache. A nil store or a
// non-positive ttl returns next unchanged.
func NewCachedCompleter(next pkgai.Completer, store cache.Store, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) pkgai.Completer {
	if store == nil || ttl <= 0 {
		return next
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cachedCompleter{next: next, store: store, ttl: ttl, metrics: m, logger: logger}
}

// CompletionKey derives the cache key for a prompt and token budget
func CompletionKey(prompt string, maxTokens int) string {
	sum := sha256.Sum256([]byte(strconv.Itoa(maxTokens) + "\x00" + prompt))
	return "completion:" + hex.EncodeToString(sum[:])
}

func (c *cachedCompleter) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	key := CompletionKey(prompt, maxTokens)

	cached, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("completion cache read failed", zap.Error(err))
	} else if ok {
		c.metrics.ObserveCache(true)
		return cached, nil
	}
	c.metrics.ObserveCache(false)

	out, err := c.next.Complete(ctx, prompt, maxTokens)
	if err != nil {
		return "", err
	}

	if err := c.store.Set(ctx, key, out, c.ttl); err != nil {
		c.logger.Warn("completion cache write failed", zap.Error(err))
	}
	return out, nil
}
