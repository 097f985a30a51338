// Package constants holds provider names shared by config and infra.
package constants

// Pub/Sub providers accepted by pubsub.provider
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
