package pubsub

import (
	"encoding/json"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/service"

	"github.com/pkg/errors"
)

// moderationMessage is the transport-neutral form of a decision event.
type moderationMessage struct {
	data       []byte
	attributes map[string]string
	// orderingKey keeps decisions about one entity in order, e.g. reject then approve.
	orderingKey string
}

func newModerationMessage(event *service.ModerationEvent) (*moderationMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode moderation event")
	}

	attributes := map[string]string{
		"event_id":  event.EventID,
		"subject":   event.Subject,
		"action":    event.Action,
		"entity_id": event.EntityID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &moderationMessage{
		data:        data,
		attributes:  attributes,
		orderingKey: event.Subject + ":" + event.EntityID,
	}, nil
}
