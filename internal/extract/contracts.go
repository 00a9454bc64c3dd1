package extract

import (
	"context"
	"encoding/json"
	"time"
)

// Request describes one document sent to the document-understanding service.
type Request struct {
	Document []byte
	Filename string
	// Instructions is the extraction prompt template for the document type.
	Instructions string
	// OutputSchema constrains the returned JSON (draft 2020-12 subset).
	OutputSchema map[string]any
}

// Result is the structured output plus service metadata.
type Result struct {
	JSON         json.RawMessage
	Model        string
	InputTokens  int
	OutputTokens int
	Duration     time.Duration
}

// DocumentExtractor turns document bytes into structured JSON. Failures
// propagate as item-level errors; the engine never retries internally.
type DocumentExtractor interface {
	Extract(ctx context.Context, req Request) (Result, error)
}
