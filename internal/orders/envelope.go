package orders

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/records"
)

// Envelope is the persisted shape of one item's extraction stage output:
// every document's raw JSON plus its provenance. It is what "the raw
// extraction output remains retrievable" means for an order.
type Envelope struct {
	Documents []EnvelopeDocument `json:"documents"`
}

// EnvelopeDocument is one extracted document inside an Envelope.
type EnvelopeDocument struct {
	FileID    uuid.UUID       `json:"file_id"`
	Filename  string          `json:"filename"`
	IsPrimary bool            `json:"is_primary"`
	Model     string          `json:"model,omitempty"`
	Output    json.RawMessage `json:"output"`
}

// DecodeEnvelope parses a stored envelope back into tagged source documents
// for the record normalizer.
func DecodeEnvelope(raw []byte) ([]records.SourceDocument, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, common.ExtractionError("stored extraction envelope is not valid JSON", err)
	}
	var docs []records.SourceDocument
	for _, d := range env.Documents {
		src := records.Source{FileID: d.FileID, Filename: d.Filename, IsPrimary: d.IsPrimary}
		decoded, err := records.DecodeDocuments(src, d.Output)
		if err != nil {
			return nil, err
		}
		docs = append(docs, decoded...)
	}
	return docs, nil
}
