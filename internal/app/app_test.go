package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MikhailRaia/bookmarks/internal/auth"
	"github.com/MikhailRaia/bookmarks/internal/config"
	"github.com/MikhailRaia/bookmarks/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "integration-token"

func newTestConfig() *config.Config {
	return &config.Config{
		ServerAddress:   "127.0.0.1:0",
		APIToken:        testToken,
		CacheTTL:        time.Minute,
		LogLevel:        "info",
		ShutdownTimeout: time.Second,
		InMemoryStorage: true,
	}
}

func doRequest(t *testing.T, method, url, token string, body []byte) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestApp_Integration(t *testing.T) {
	app, err := NewApp(context.Background(), newTestConfig())
	require.NoError(t, err)
	defer app.Close()

	server := httptest.NewServer(app.handler)
	defer server.Close()

	payload := []byte(`{"title":"Go","url":"https://go.dev","description":"home","rating":5}`)
	resp := doRequest(t, http.MethodPost, server.URL+"/bookmarks", testToken, payload)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Bookmark
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "/bookmarks/"+created.ID, resp.Header.Get("Location"))

	resp = doRequest(t, http.MethodGet, server.URL+"/bookmarks/"+created.ID, testToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched model.Bookmark
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	assert.Equal(t, created, fetched)

	resp = doRequest(t, http.MethodDelete, server.URL+"/bookmarks/"+created.ID, testToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, server.URL+"/bookmarks/"+created.ID, testToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNewApp_RequiresStorage(t *testing.T) {
	cfg := newTestConfig()
	cfg.InMemoryStorage = false

	_, err := NewApp(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrNoStorage)
}

func TestApp_RejectsIssuedJWTByDefault(t *testing.T) {
	cfg := newTestConfig()

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	server := httptest.NewServer(app.handler)
	defer server.Close()

	token, err := auth.NewTokenVerifier(cfg.APIToken).IssueToken("integration", time.Minute)
	require.NoError(t, err)

	resp := doRequest(t, http.MethodGet, server.URL+"/bookmarks", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, server.URL+"/bookmarks", cfg.APIToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApp_AcceptsIssuedJWTWhenEnabled(t *testing.T) {
	cfg := newTestConfig()
	cfg.AllowSignedTokens = true

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	server := httptest.NewServer(app.handler)
	defer server.Close()

	token, err := auth.NewTokenVerifier(cfg.APIToken).IssueToken("integration", time.Minute)
	require.NoError(t, err)

	resp := doRequest(t, http.MethodGet, server.URL+"/bookmarks", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, server.URL+"/bookmarks", "wrong-token", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestApp_GRPCServerRegistered(t *testing.T) {
	cfg := newTestConfig()
	cfg.GRPCAddress = "127.0.0.1:0"

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.grpcServer)
	assert.Contains(t, app.grpcServer.GetServiceInfo(), "bookmarks.BookmarkService")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	cfg := newTestConfig()
	cfg.GRPCAddress = "127.0.0.1:0"

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewApp_UnreachableRedis(t *testing.T) {
	cfg := newTestConfig()
	cfg.RedisAddr = "127.0.0.1:1"

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewApp(ctx, cfg)
	assert.Error(t, err)
}
