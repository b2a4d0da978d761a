// Package constants holds shared enumeration values used across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Alert delivery statuses recorded per dispatched push.
const (
	AlertStatusSent   = "sent"
	AlertStatusFailed = "failed"
)
