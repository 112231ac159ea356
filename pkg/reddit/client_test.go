package reddit_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go-intake-backend/pkg/reddit"

	"github.com/stretchr/testify/assert"
)

func newVerifier(t *testing.T, tokenHandler, aboutHandler http.HandlerFunc) *reddit.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", tokenHandler)
	mux.HandleFunc("/user/", aboutHandler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return reddit.NewClient(reddit.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     srv.URL + "/api/v1/access_token",
		APIBaseURL:   srv.URL,
	})
}

func tokenOK(w http.ResponseWriter, _ *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
}

func TestVerifyUserFailsClosedWithoutCredentials(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	client := reddit.NewClient(reddit.Config{
		TokenURL:   srv.URL,
		APIBaseURL: srv.URL,
	})

	err := client.VerifyUser(context.Background(), "someone")
	assert.ErrorIs(t, err, reddit.ErrNotVerified)
	assert.Zero(t, atomic.LoadInt32(&calls), "unconfigured verifier must not call the provider")
}

func TestVerifyUserTokenFailures(t *testing.T) {
	t.Run("non-success token status", func(t *testing.T) {
		client := newVerifier(t,
			func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusUnauthorized) },
			func(w http.ResponseWriter, _ *http.Request) { t.Error("user lookup must not run without a token") },
		)
		err := client.VerifyUser(context.Background(), "someone")
		assert.ErrorIs(t, err, reddit.ErrNotVerified)
	})

	t.Run("token response without access_token", func(t *testing.T) {
		client := newVerifier(t,
			func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]string{"scope": "read"})
			},
			func(w http.ResponseWriter, _ *http.Request) { t.Error("user lookup must not run without a token") },
		)
		err := client.VerifyUser(context.Background(), "someone")
		assert.ErrorIs(t, err, reddit.ErrNotVerified)
	})
}

func TestVerifyUserLookup(t *testing.T) {
	t.Run("account not found", func(t *testing.T) {
		client := newVerifier(t, tokenOK,
			func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) },
		)
		err := client.VerifyUser(context.Background(), "ghost")
		assert.ErrorIs(t, err, reddit.ErrNotVerified)
	})

	t.Run("success status without identity marker", func(t *testing.T) {
		client := newVerifier(t, tokenOK,
			func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
			},
		)
		err := client.VerifyUser(context.Background(), "ghost")
		assert.ErrorIs(t, err, reddit.ErrNotVerified)
	})

	t.Run("verified account", func(t *testing.T) {
		client := newVerifier(t, tokenOK,
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
				assert.Equal(t, "/user/honest_worker/about", r.URL.Path)
				_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"name": "honest_worker"}})
			},
		)
		err := client.VerifyUser(context.Background(), "honest_worker")
		assert.NoError(t, err)
	})
}
