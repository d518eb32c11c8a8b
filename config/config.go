package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Gateway configures the outbound chat gateway client and webhook auth.
	Gateway *GatewayConfig `json:"gateway" yaml:"gateway"`

	// Dedup configures the inbound message deduplication gate.
	Dedup *DedupConfig `json:"dedup" yaml:"dedup"`

	// Referral configures commission attribution and the referral country policy.
	Referral *ReferralConfig `json:"referral" yaml:"referral"`

	// Discounts holds per-category window/threshold overrides, keyed by
	// discount category id. Missing categories fall back to built-in defaults.
	Discounts map[string]*DiscountWindowConfig `json:"discounts" yaml:"discounts"`

	// Scheduler configures the periodic background jobs.
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Media configures the blob store for receipts, QR codes and referral videos.
	Media *MediaConfig `json:"media" yaml:"media"`

	// Staff configures staff signature tokens for order sub-records.
	Staff *StaffConfig `json:"staff" yaml:"staff"`

	// QRCode configures referral invite QR generation.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configures order event publishing to the ledger worker.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GatewayConfig defines the chat gateway client configuration.
type GatewayConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// APIToken authenticates outbound send calls against the gateway.
	APIToken string `json:"apiToken" yaml:"apiToken"`

	// WebhookSecret is the shared secret the gateway presents on webhook calls.
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`

	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`

	RetryCount int `json:"retryCount" yaml:"retryCount"`
}

// DedupConfig defines the dedup gate window and size ceiling.
type DedupConfig struct {
	// TTL is how long a message key is remembered. It only needs to outlive
	// webhook retry storms, not provide long-term dedup.
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// MaxEntries triggers an out-of-band sweep when exceeded.
	MaxEntries int `json:"maxEntries" yaml:"maxEntries"`
}

// ReferralConfig defines commission attribution parameters.
type ReferralConfig struct {
	// CommissionRateBps is the default referrer commission rate in basis
	// points. A customer-level rate overrides it.
	CommissionRateBps int `json:"commissionRateBps" yaml:"commissionRateBps"`

	// BlockedCountries and AllowedCountries implement the referral country
	// policy literally: listed blocked codes are rejected first, then only
	// listed allowed codes pass, everything else is rejected.
	BlockedCountries []string `json:"blockedCountries" yaml:"blockedCountries"`
	AllowedCountries []string `json:"allowedCountries" yaml:"allowedCountries"`
}

// DiscountWindowConfig defines the window/threshold policy of one discount
// category. Only the fields relevant to a category are consulted.
type DiscountWindowConfig struct {
	WindowDays           int   `json:"windowDays" yaml:"windowDays"`
	MinReferrals         int   `json:"minReferrals" yaml:"minReferrals"`
	ExtraDaysPerReferral int   `json:"extraDaysPerReferral" yaml:"extraDaysPerReferral"`
	MinSpend             int64 `json:"minSpend" yaml:"minSpend"`
	SinglePurchaseMin    int64 `json:"singlePurchaseMin" yaml:"singlePurchaseMin"`
	TrailingSpendMin     int64 `json:"trailingSpendMin" yaml:"trailingSpendMin"`
	TrailingDays         int   `json:"trailingDays" yaml:"trailingDays"`
	MaxAccountAgeDays    int   `json:"maxAccountAgeDays" yaml:"maxAccountAgeDays"`
}

// SchedulerConfig defines periodic job intervals and reminder delays.
type SchedulerConfig struct {
	SweepInterval      time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
	AbandonedCartAfter time.Duration `json:"abandonedCartAfter" yaml:"abandonedCartAfter"`
	OfferMediaTTL      time.Duration `json:"offerMediaTtl" yaml:"offerMediaTtl"`
	PickupReminderHour int           `json:"pickupReminderHour" yaml:"pickupReminderHour"`
}

// MediaConfig defines the blob store location.
type MediaConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. "file:///var/bazaar/media"
	// or "gs://bazaar-media".
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// StaffConfig defines staff signature token settings.
type StaffConfig struct {
	TokenSecret string        `json:"tokenSecret" yaml:"tokenSecret"`
	TokenTTL    time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	BcryptCost  int           `json:"bcryptCost" yaml:"bcryptCost"`

	// Credentials maps staff ids to bcrypt hashes of their passwords.
	Credentials map[string]string `json:"credentials" yaml:"credentials"`
}

// QRCodeConfig defines referral QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for order event publishing.
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: GATEWAY_WEBHOOKSECRET -> gateway.webhookSecret
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
