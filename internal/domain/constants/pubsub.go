// Package constants holds enumerated configuration values shared across layers.
package constants

// Supported Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
