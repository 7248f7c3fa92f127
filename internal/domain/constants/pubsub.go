package constants

// Pub/Sub providers accepted by pubsub.provider.
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Attribute keys set on every published auth event.
const (
	PubSubAttrEventType = "event_type"
	PubSubAttrSubject   = "subject"
	PubSubAttrRequestID = "request_id"
)
