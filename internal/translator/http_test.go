package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lexibot/internal/config"
	"lexibot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func newTestClient(url string) *HTTPClient {
	return NewHTTPClient(config.TranslatorConfig{
		URL:        url,
		Timeout:    2 * time.Second,
		SourceLang: "ru",
		TargetLang: "en",
	})
}

func TestHTTPClient_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req translateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Стол", req.Query)
		assert.Equal(t, "ru", req.Source)
		assert.Equal(t, "en", req.Target)

		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "table"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Translate(context.Background(), "Стол")

	assert.NoError(t, err)
	assert.Equal(t, "table", result)
}

func TestHTTPClient_Translate_TrimsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "  table \n"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Translate(context.Background(), "Стол")

	assert.NoError(t, err)
	assert.Equal(t, "table", result)
}

func TestHTTPClient_Translate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(translateResponse{Error: "invalid api key"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Translate(context.Background(), "Стол")

	assert.ErrorIs(t, err, domain.ErrTranslationFailed)
	assert.Contains(t, err.Error(), "invalid api key")
	assert.Empty(t, result)
}

func TestHTTPClient_Translate_EmptyTranslation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "   "})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Translate(context.Background(), "Стол")

	assert.ErrorIs(t, err, domain.ErrTranslationFailed)
	assert.Empty(t, result)
}

func TestHTTPClient_Translate_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Translate(context.Background(), "Стол")

	assert.ErrorIs(t, err, domain.ErrTranslationFailed)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPClient_Translate_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "table"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Translate(ctx, "Стол")

	assert.ErrorIs(t, err, domain.ErrTranslationFailed)
}
