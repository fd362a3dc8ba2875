package notifier

import (
	"context"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGatewaySend(t *testing.T) {
	var (
		gotAuth string
		gotBody map[string]any
		status  = http.StatusOK
		calls   int
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotAuth = r.Header.Get("Authorization")

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = nil
		require.NoError(t, json.Unmarshal(b, &gotBody))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"ids":[1]}`))
	}))
	defer srv.Close()

	token := "first"
	g := New(Config{URL: srv.URL, Token: func() string { return token }})

	msg := Message{Sender: "MonCalepin", Recipient: 33781385459, Body: "Bonjour Lea"}

	t.Run("sent", func(t *testing.T) {
		st, err := g.Send(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, StatusSent, st)

		assert.Equal(t, "Token first", gotAuth)
		assert.Equal(t, "MonCalepin", gotBody["sender"])
		assert.Equal(t, "Bonjour Lea", gotBody["message"])
		assert.Equal(t, []any{map[string]any{"msisdn": float64(33781385459)}}, gotBody["recipients"])
	})

	t.Run("token_read_per_call", func(t *testing.T) {
		token = "second"
		_, err := g.Send(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, "Token second", gotAuth)
	})

	t.Run("rejected", func(t *testing.T) {
		status = http.StatusUnauthorized
		defer func() { status = http.StatusOK }()

		st, err := g.Send(context.Background(), msg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Equal(t, StatusRejected, st)
	})

	t.Run("no_retry", func(t *testing.T) {
		status = http.StatusServiceUnavailable
		defer func() { status = http.StatusOK }()

		before := calls
		st, _ := g.Send(context.Background(), msg)
		assert.Equal(t, StatusRejected, st)
		assert.Equal(t, before+1, calls)
	})
}

func TestGatewaySendTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	g := New(Config{URL: url})
	st, err := g.Send(context.Background(), Message{Sender: "s", Recipient: 1, Body: "b"})
	assert.Error(t, err)
	assert.Equal(t, StatusTransportFailed, st)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "sent", StatusSent.String())
	assert.Equal(t, "rejected", StatusRejected.String())
	assert.Equal(t, "transport_failed", StatusTransportFailed.String())
	assert.Equal(t, "status(9)", Status(9).String())
}
