// Package dedupe implements the inbound message deduplication gate that
// shields the conversation engine from duplicate webhook deliveries.
package dedupe

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
)

const (
	defaultTTL        = 60 * time.Second
	defaultMaxEntries = 100_000
)

// Gate remembers recently seen message keys for a short window. Losing its
// contents only risks rare duplicate processing, never the correctness of
// committed orders, so it is in-memory only.
type Gate struct {
	mu         sync.Mutex
	entries    map[string]time.Time
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// New creates a gate from configuration, applying defaults for missing values.
func New(cfg *config.Config, logger *slog.Logger) *Gate {
	ttl := defaultTTL
	maxEntries := defaultMaxEntries
	if cfg != nil && cfg.Dedup != nil {
		if cfg.Dedup.TTL > 0 {
			ttl = cfg.Dedup.TTL
		}
		if cfg.Dedup.MaxEntries > 0 {
			maxEntries = cfg.Dedup.MaxEntries
		}
	}

	if logger != nil {
		logger.Debug("Dedup gate initialized",
			slog.Duration("ttl", ttl),
			slog.Int("max_entries", maxEntries),
		)
	}

	return &Gate{
		entries:    make(map[string]time.Time),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Seen reports whether the message was already handled within the TTL
// window, recording it on first sight. Runs before the per-customer lock is
// acquired, so it must stay cheap and non-blocking.
func (g *Gate) Seen(msg *entity.InboundMessage) bool {
	key := Key(msg)
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	if firstSeen, ok := g.entries[key]; ok && now.Sub(firstSeen) < g.ttl {
		return true
	}

	// Size ceiling triggers an out-of-band sweep regardless of elapsed time.
	if len(g.entries) >= g.maxEntries {
		g.sweepLocked(now)
	}

	g.entries[key] = now

	return false
}

// Sweep drops expired entries. Called periodically by the scheduler.
func (g *Gate) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.sweepLocked(g.now())
}

// Len returns the current number of remembered keys.
func (g *Gate) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.entries)
}

func (g *Gate) sweepLocked(now time.Time) int {
	swept := 0
	for key, firstSeen := range g.entries {
		if now.Sub(firstSeen) >= g.ttl {
			delete(g.entries, key)
			swept++
		}
	}

	return swept
}

// Key builds the dedup key for an envelope: sender plus provider message id
// when present, else sender plus delivery timestamp. The body is deliberately
// excluded so that repeated identical replies like "1" from the same user in
// distinct turns are not treated as duplicates.
func Key(msg *entity.InboundMessage) string {
	if msg.ProviderMessageID != "" {
		return msg.Sender + "|" + msg.ProviderMessageID
	}

	return msg.Sender + "|" + strconv.FormatInt(msg.Timestamp.Unix(), 10)
}
