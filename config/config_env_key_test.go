package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"gateway": map[string]any{
			"webhookSecret": "",
		},
		"staff": map[string]any{
			"tokenTtl": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GATEWAY_WEBHOOKSECRET", want: "gateway.webhookSecret"},
		{envKey: "STAFF_TOKENTTL", want: "staff.tokenTtl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
