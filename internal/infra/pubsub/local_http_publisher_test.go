package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/constants"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishModerationEvent(t *testing.T) {
	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.ModerationEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Subject:    "seller",
		EntityID:   "s1",
		Action:     "reject",
		Reason:     "Documents are missing",
		AdminID:    "admin-1",
		OccurredAt: time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishModerationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "seller", received.Message.Attributes["subject"])
	assert.Equal(t, "reject", received.Message.Attributes["action"])
	assert.Equal(t, "seller:s1", received.Message.OrderingKey)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ModerationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "s1", decoded.EntityID)
	assert.Equal(t, "Documents are missing", decoded.Reason)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishModerationEvent(context.Background(), &service.ModerationEvent{EventID: "evt-2"})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(newDiscardLogger())

	assert.NoError(t, publisher.PublishModerationEvent(context.Background(), &service.ModerationEvent{EventID: "evt-3"}))
	assert.NoError(t, publisher.Close())
}

func TestNewPublisher_ProviderSelection(t *testing.T) {
	ctx := context.Background()

	publisher, err := newPublisher(ctx, nil, newDiscardLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	publisher, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9090/push"}, newDiscardLogger())
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, newDiscardLogger())
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "miorish"}, newDiscardLogger())
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, newDiscardLogger())
	assert.Error(t, err)
}
