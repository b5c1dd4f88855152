package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookServer(t *testing.T) (*httptest.Server, chan map[string]any) {
	received := make(chan map[string]any, 10)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		received <- payload
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, received
}

func waitForAlert(t *testing.T, received chan map[string]any) map[string]any {
	select {
	case payload := <-received:
		return payload
	case <-time.After(2 * time.Second):
		t.Fatal("expected a Slack alert to be sent")
		return nil
	}
}

func TestWrapEventHandler_Success(t *testing.T) {
	server, received := newWebhookServer(t)
	m := NewErrorAlertMiddleware(SlackAlertConfig{WebhookURL: server.URL, AppName: "forumbot"})

	called := false
	m.WrapEventHandler("InteractionCreate", func() error {
		called = true
		return nil
	})()

	assert.True(t, called)
	select {
	case <-received:
		t.Fatal("no alert expected for a successful handler")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWrapEventHandler_ErrorIsAlerted(t *testing.T) {
	server, received := newWebhookServer(t)
	m := NewErrorAlertMiddleware(SlackAlertConfig{
		WebhookURL:  server.URL,
		Environment: "dev",
		AppName:     "forumbot",
		LogsURL:     "https://logs.example.com",
	})

	m.WrapEventHandler("InteractionCreate /lock", func() error {
		return errors.New("failed to lock thread")
	})()

	payload := waitForAlert(t, received)
	assert.Contains(t, payload["text"], "InteractionCreate /lock: failed to lock thread")
	assert.NotEmpty(t, payload["blocks"])
}

func TestWrapEventHandler_DuplicateErrorsAreDeduplicated(t *testing.T) {
	server, received := newWebhookServer(t)
	m := NewErrorAlertMiddleware(SlackAlertConfig{WebhookURL: server.URL, AppName: "forumbot"})

	handler := m.WrapEventHandler("Ready", func() error {
		return errors.New("failed to register bot commands")
	})
	handler()
	handler()

	waitForAlert(t, received)
	select {
	case <-received:
		t.Fatal("duplicate error should not be alerted within the cooldown")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWrapEventHandler_PanicIsRecovered(t *testing.T) {
	server, received := newWebhookServer(t)
	m := NewErrorAlertMiddleware(SlackAlertConfig{WebhookURL: server.URL, AppName: "forumbot"})

	assert.NotPanics(t, func() {
		m.WrapEventHandler("ThreadCreate", func() error {
			panic("nil channel")
		})()
	})

	payload := waitForAlert(t, received)
	assert.Contains(t, payload["text"], "PANIC - nil channel")
}

func TestWrapEventHandler_NoWebhookConfigured(t *testing.T) {
	m := NewErrorAlertMiddleware(SlackAlertConfig{AppName: "forumbot"})

	assert.NotPanics(t, func() {
		m.WrapEventHandler("Ready", func() error {
			return errors.New("boom")
		})()
	})
}

func TestAlertOnError_ExpiredEntriesAreEvicted(t *testing.T) {
	m := NewErrorAlertMiddleware(SlackAlertConfig{AppName: "forumbot"})
	m.alertCooldown = 10 * time.Millisecond

	m.alertOnError(errors.New("failed to lock thread 1"), "InteractionCreate /lock")
	time.Sleep(20 * time.Millisecond)
	m.alertOnError(errors.New("failed to lock thread 2"), "InteractionCreate /lock")

	m.mutex.Lock()
	defer m.mutex.Unlock()
	assert.Len(t, m.alertedErrors, 1, "only the alert still within its cooldown should be tracked")
}
