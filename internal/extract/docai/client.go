// Package docai is the HTTP client for the document-understanding service.
package docai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/extract"
)

// Config for the docai client.
type Config struct {
	Endpoint string        // base URL of the extraction service
	APIKey   string        // if empty, falls back to env EXTRACTOR_API_KEY
	Timeout  time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("EXTRACTOR_API_KEY")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Extract implements extract.DocumentExtractor against the service's
// /v1/extract endpoint.
func (c *Client) Extract(ctx context.Context, req extract.Request) (extract.Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("docai.extract.start",
		"req_id", rid,
		"filename", req.Filename,
		"document_bytes", len(req.Document),
	)

	body := map[string]any{
		"document":      base64.StdEncoding.EncodeToString(req.Document),
		"filename":      req.Filename,
		"instructions":  req.Instructions,
		"output_schema": req.OutputSchema,
	}
	endpoint := strings.TrimRight(c.cfg.Endpoint, "/") + "/v1/extract"

	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("docai.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.Result{}, common.ExtractionError("extraction service call failed", err)
	}

	var resp struct {
		Output       json.RawMessage `json:"output"`
		Model        string          `json:"model"`
		InputTokens  int             `json:"input_tokens"`
		OutputTokens int             `json:"output_tokens"`
		Error        string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.Error("docai.extract.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return extract.Result{}, common.ExtractionError("decode extraction response", err)
	}
	if resp.Error != "" {
		return extract.Result{}, common.ExtractionError(resp.Error, nil)
	}
	if len(resp.Output) == 0 {
		return extract.Result{}, common.ExtractionError("extraction service returned no output", nil)
	}

	c.logger.Info("docai.extract.ok",
		"req_id", rid,
		"model", resp.Model,
		"output_bytes", len(resp.Output),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return extract.Result{
		JSON:         resp.Output,
		Model:        resp.Model,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
		Duration:     time.Since(start),
	}, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("extraction service returned %d: %s", resp.StatusCode, truncate(string(raw), 300))
	}
	return raw, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
