package docai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/extract"
)

func TestExtractDecodesServiceResponse(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"output":        map[string]any{"invoice_number": "INV-9"},
			"model":         "docai-2",
			"input_tokens":  120,
			"output_tokens": 40,
		})
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "sk-test"}, nil)
	res, err := c.Extract(context.Background(), extract.Request{
		Document:     []byte("%PDF-fake"),
		Filename:     "inv.pdf",
		Instructions: "extract everything",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF-fake")), gotBody["document"])
	assert.Equal(t, "inv.pdf", gotBody["filename"])

	assert.Equal(t, "docai-2", res.Model)
	assert.Equal(t, 120, res.InputTokens)
	assert.JSONEq(t, `{"invoice_number":"INV-9"}`, string(res.JSON))
}

func TestExtractSurfacesServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "document is unreadable"})
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "sk-test"}, nil)
	_, err := c.Extract(context.Background(), extract.Request{Document: []byte("x"), Filename: "a.pdf"})
	require.Error(t, err)
	assert.True(t, common.HasCode(err, common.CodeExtraction))
	assert.Contains(t, err.Error(), "document is unreadable")
}

func TestExtractFailsOnHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "sk-test"}, nil)
	_, err := c.Extract(context.Background(), extract.Request{Document: []byte("x"), Filename: "a.pdf"})
	require.Error(t, err)
	assert.True(t, common.HasCode(err, common.CodeExtraction))
}

func TestExtractRejectsEmptyOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"model": "docai-2"})
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "sk-test"}, nil)
	_, err := c.Extract(context.Background(), extract.Request{Document: []byte("x"), Filename: "a.pdf"})
	require.Error(t, err)
}
