package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTextSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "models/test-model:generateContent")
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Nil(t, req.GenerationConfig)

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "hello there"}}}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "test-model", false)
	text, err := client.GenerateText(context.Background(), "say hi")
	require.NoError(t, err)
	assert.Equal(t, "hello there", text)
}

func TestGenerateJSONSetsMimeType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.GenerationConfig)
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": `{"ok":true}`}}}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "test-model", false)
	text, err := client.GenerateJSON(context.Background(), "answer in json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, text)
}

func TestGenerateTextUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "test-model", false)
	_, err := client.GenerateText(context.Background(), "say hi")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "test-model", false)
	_, err := client.GenerateText(context.Background(), "say hi")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateTextNoAPIKey(t *testing.T) {
	client := NewClient("http://unused", "", "test-model", false)
	_, err := client.GenerateText(context.Background(), "say hi")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestMockModeSkipsNetwork(t *testing.T) {
	client := NewClient("http://unreachable.invalid", "", "test-model", true)

	text, err := client.GenerateText(context.Background(), "say hi")
	require.NoError(t, err)
	assert.NotEmpty(t, text)

	out, err := client.GenerateJSON(context.Background(), "mission please")
	require.NoError(t, err)
	var mission struct {
		Title  string `json:"title"`
		Points int    `json:"points"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &mission))
	assert.NotEmpty(t, mission.Title)
}
