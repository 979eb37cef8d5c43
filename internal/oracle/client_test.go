package oracle_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhanush7123/sanskrit-spark/internal/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain_ReturnsFirstChoice(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"धर्म: from dhṛ, to hold"}}]}`))
	}))
	defer srv.Close()

	c := oracle.New(srv.URL, "key", "test-model")
	out, err := c.Explain(context.Background(), "dharma")

	require.NoError(t, err)
	assert.Equal(t, "धर्म: from dhṛ, to hold", out)
	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "Explain the Sanskrit connection for: dharma", got.Messages[1].Content)
}

func TestExplain_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	out, err := oracle.New(srv.URL, "key", "m").Explain(context.Background(), "karma")

	require.NoError(t, err)
	assert.Equal(t, oracle.NoWisdom, out)
}

func TestExplain_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := oracle.New(srv.URL, "key", "m").Explain(context.Background(), "karma")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestExplain_MissingKey(t *testing.T) {
	_, err := oracle.New("http://127.0.0.1:1", "", "m").Explain(context.Background(), "karma")
	assert.ErrorIs(t, err, oracle.ErrNotConfigured)
}
