package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGatewayConfig(baseURL string) *config.Config {
	return &config.Config{
		Gateway: &config.GatewayConfig{
			BaseURL:  baseURL,
			APIToken: "test-token",
		},
	}
}

func TestRestyGateway_Send(t *testing.T) {
	var received sendRequest
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway, err := NewRestyGateway(newTestGatewayConfig(server.URL), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	err = gateway.Send(context.Background(), &entity.OutboundMessage{
		Recipient: "+9647701234567",
		Text:      "Welcome to Bazaar!",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", authHeader)
	assert.Equal(t, "+9647701234567", received.Recipient)
	assert.Equal(t, "Welcome to Bazaar!", received.Text)
}

func TestRestyGateway_Send_RejectedByGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown recipient", http.StatusBadRequest)
	}))
	defer server.Close()

	gateway, err := NewRestyGateway(newTestGatewayConfig(server.URL), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	err = gateway.Send(context.Background(), &entity.OutboundMessage{Recipient: "+1"})
	assert.Error(t, err)
}

func TestNewRestyGateway_RequiresBaseURL(t *testing.T) {
	_, err := NewRestyGateway(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
