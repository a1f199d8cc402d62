// Package pubsub publishes identity lifecycle events to a message broker.
package pubsub

import "identity/internal/domain/service"

// attributes are the message attributes subscribers filter on.
func attributes(event *service.IdentityEvent) map[string]string {
	attrs := map[string]string{
		"event_type":  string(event.Type),
		"identity_id": event.IdentityID,
	}
	if event.Provider != "" {
		attrs["provider"] = event.Provider
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return attrs
}
