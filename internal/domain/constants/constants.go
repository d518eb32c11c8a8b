// Package constants defines shared domain-level constants.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
