package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewHTTPClient(t *testing.T) {
	t.Run("empty base URL", func(t *testing.T) {
		_, err := NewHTTPClient("  ")
		assert.Error(t, err)
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		c, err := NewHTTPClient("http://localhost:5000/api/")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000/api", c.baseURL)
	})

	t.Run("timeout option", func(t *testing.T) {
		c, err := NewHTTPClient("http://localhost:5000/api", WithTimeout(3*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, c.httpClient.Timeout)
	})
}

func TestHTTPClient_StartChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/start-chat", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message":         "Hello, tell me about yourself.",
			"conversation_id": "123",
		})
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL+"/api", WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	resp, err := c.StartChat(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Hello, tell me about yourself.", resp.Message)
	assert.Equal(t, "123", resp.ConversationID)
}

func TestHTTPClient_Chat(t *testing.T) {
	t.Run("turn with rating", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/chat", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body Request
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "I used goroutines", body.Message)
			assert.Equal(t, 2, body.QuestionCount)
			assert.Len(t, body.ConversationHistory, 1)

			_ = json.NewEncoder(w).Encode(map[string]any{
				"message": "Good answer.",
				"rating":  "Overall Score: 80%",
				"conversation_history": []map[string]string{
					{"role": "user", "content": "I used goroutines"},
					{"role": "assistant", "content": "Good answer."},
				},
				"question_count": 0,
			})
		}))
		defer srv.Close()

		c, err := NewHTTPClient(srv.URL + "/api")
		require.NoError(t, err)

		resp, err := c.Chat(context.Background(), Request{
			ConversationHistory: []Message{{Role: RoleAssistant, Content: "Question?"}},
			Message:             "I used goroutines",
			QuestionCount:       2,
		})

		require.NoError(t, err)
		assert.Equal(t, "Good answer.", resp.Message)
		assert.Equal(t, "Overall Score: 80%", resp.Rating)
		assert.Len(t, resp.ConversationHistory, 2)
		assert.Equal(t, 0, resp.QuestionCount)
	})

	t.Run("null rating decodes as empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"Next question.","rating":null,"conversation_history":[],"question_count":1}`))
		}))
		defer srv.Close()

		c, err := NewHTTPClient(srv.URL)
		require.NoError(t, err)

		resp, err := c.Chat(context.Background(), Request{Message: "hi"})

		require.NoError(t, err)
		assert.Empty(t, resp.Rating)
		assert.Equal(t, 1, resp.QuestionCount)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model offline", http.StatusBadGateway)
		}))
		defer srv.Close()

		c, err := NewHTTPClient(srv.URL)
		require.NoError(t, err)

		_, err = c.Chat(context.Background(), Request{Message: "hi"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
		assert.Contains(t, err.Error(), "model offline")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		c, err := NewHTTPClient(srv.URL)
		require.NoError(t, err)

		_, err = c.Chat(context.Background(), Request{Message: "hi"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode /chat response")
	})

	t.Run("canceled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c, err := NewHTTPClient(srv.URL)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = c.Chat(ctx, Request{Message: "hi"})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
