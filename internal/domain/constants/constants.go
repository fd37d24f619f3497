// Package constants holds values shared across layers.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Sync event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// HeaderRequestID carries the request ID across services
const HeaderRequestID = "X-Request-Id"
