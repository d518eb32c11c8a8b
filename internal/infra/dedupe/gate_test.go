package dedupe

import (
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T, ttl time.Duration, maxEntries int) (*Gate, *time.Time) {
	t.Helper()

	cfg := &config.Config{
		Dedup: &config.DedupConfig{TTL: ttl, MaxEntries: maxEntries},
	}
	gate := New(cfg, nil)

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gate.now = func() time.Time { return current }

	return gate, &current
}

func TestGate_SeenTwiceWithProviderID(t *testing.T) {
	gate, _ := newTestGate(t, time.Minute, 1000)

	msg := &entity.InboundMessage{
		Sender:            "+989121112233",
		Body:              "add product X qty 2",
		ProviderMessageID: "wamid.abc123",
		Timestamp:         time.Now(),
	}

	assert.False(t, gate.Seen(msg))
	assert.True(t, gate.Seen(msg))

	// Same id, different body: still a duplicate. The key ignores content.
	redelivered := *msg
	redelivered.Body = "something else entirely"
	assert.True(t, gate.Seen(&redelivered))
}

func TestGate_TimestampFallbackIgnoresBody(t *testing.T) {
	gate, _ := newTestGate(t, time.Minute, 1000)

	first := &entity.InboundMessage{
		Sender:    "+989121112233",
		Body:      "1",
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	second := &entity.InboundMessage{
		Sender:    "+989121112233",
		Body:      "1",
		Timestamp: time.Date(2025, 6, 1, 12, 0, 5, 0, time.UTC),
	}

	// Identical replies in distinct turns carry distinct timestamps and must
	// both pass the gate.
	assert.False(t, gate.Seen(first))
	assert.False(t, gate.Seen(second))

	// A true redelivery carries the same timestamp.
	assert.True(t, gate.Seen(first))
}

func TestGate_EntriesExpire(t *testing.T) {
	gate, current := newTestGate(t, time.Minute, 1000)

	msg := &entity.InboundMessage{
		Sender:            "+989121112233",
		ProviderMessageID: "wamid.expiring",
		Timestamp:         *current,
	}

	require.False(t, gate.Seen(msg))

	*current = current.Add(61 * time.Second)

	// Past the TTL the key is forgotten and the message counts as new again.
	assert.False(t, gate.Seen(msg))
}

func TestGate_SweepDropsOnlyExpired(t *testing.T) {
	gate, current := newTestGate(t, time.Minute, 1000)

	old := &entity.InboundMessage{Sender: "a", ProviderMessageID: "1", Timestamp: *current}
	require.False(t, gate.Seen(old))

	*current = current.Add(45 * time.Second)
	fresh := &entity.InboundMessage{Sender: "b", ProviderMessageID: "2", Timestamp: *current}
	require.False(t, gate.Seen(fresh))

	*current = current.Add(30 * time.Second)

	swept := gate.Sweep()
	assert.Equal(t, 1, swept)
	assert.Equal(t, 1, gate.Len())
}

func TestGate_SizeCeilingForcesSweep(t *testing.T) {
	gate, current := newTestGate(t, time.Minute, 2)

	require.False(t, gate.Seen(&entity.InboundMessage{Sender: "a", ProviderMessageID: "1"}))
	require.False(t, gate.Seen(&entity.InboundMessage{Sender: "b", ProviderMessageID: "2"}))

	// Everything is expired by the time the ceiling is hit, so the forced
	// sweep clears room instead of letting the map grow without bound.
	*current = current.Add(2 * time.Minute)

	require.False(t, gate.Seen(&entity.InboundMessage{Sender: "c", ProviderMessageID: "3"}))
	assert.Equal(t, 1, gate.Len())
}
