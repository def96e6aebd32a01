package http

import (
	"context"
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

type echoPayload struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestPostJSON_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/things", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	// Act
	var out echoPayload
	err := client.PostJSON(context.Background(), "/things",
		echoPayload{Name: "a", Value: 7}, &out,
		map[string]string{"Authorization": "Bearer tok"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "a", out.Name)
	assert.Equal(t, 7, out.Value)
}

func TestGetJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(echoPayload{Name: "b", Value: 2})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	var out echoPayload
	err := client.GetJSON(context.Background(), "/things/b", &out, nil)

	require.NoError(t, err)
	assert.Equal(t, "b", out.Name)
}

func TestPostForm_EncodesValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	values := map[string][]string{"grant_type": {"client_credentials"}}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := client.PostForm(context.Background(), "", values, &out)

	require.NoError(t, err)
	assert.Equal(t, "tok", out.AccessToken)
}

func TestDo_NonSuccessStatusReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	err := client.GetJSON(context.Background(), "/things", nil, nil)

	require.Error(t, err)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "nope")
}

func TestDo_TransportErrorIsNotStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)

	err := client.GetJSON(context.Background(), "/things", nil, nil)

	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestGetJSON_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, 30*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	err := client.GetJSON(ctx, "/slow", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
