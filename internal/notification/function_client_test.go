package notification_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-care/internal/events"
	"go-care/internal/notification"

	"github.com/stretchr/testify/assert"
)

func TestFunctionClient_NotifyLeave(t *testing.T) {
	t.Run("posts payload with auth header", func(t *testing.T) {
		var got events.LeaveNotificationEvent
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			assert.Equal(t, "rid-1", r.Header.Get("X-Request-ID"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := notification.NewFunctionClient(srv.URL, "secret", time.Second)
		err := c.NotifyLeave(context.Background(), submittedEvent())

		assert.NoError(t, err)
		assert.Equal(t, "leave-1", got.LeaveRequestID)
		assert.Equal(t, events.LeaveActionSubmitted, got.Action)
	})

	t.Run("non 2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		err := notification.NewFunctionClient(srv.URL, "", time.Second).NotifyLeave(context.Background(), submittedEvent())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("missing url", func(t *testing.T) {
		err := notification.NewFunctionClient("", "", 0).NotifyLeave(context.Background(), submittedEvent())
		assert.Error(t, err)
	})
}
