package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order represents an order aggregate for data transfer between layers.
// It is owned by the state machine and mutated only through the processing
// pipeline.
type Order struct {
	ID             uuid.UUID             `json:"id"`
	CompanyID      uuid.UUID             `json:"company_id"`
	DocType        string                `json:"doc_type"`
	Status         string                `json:"status"`
	CompletedItems int                   `json:"completed_items"`
	FailedItems    int                   `json:"failed_items"`
	ResultURIs     map[string]string     `json:"result_uris,omitempty"` // artifact name -> blob URI
	MappingConfig  *MappingConfiguration `json:"mapping_config,omitempty"` // order-wide fallback when an item has none
	ErrorMessage   *string               `json:"error_message,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// OrderFile references one document within an item. Exactly one file per
// item is primary; the rest are attachments.
type OrderFile struct {
	FileID    uuid.UUID `json:"file_id"`
	Filename  string    `json:"filename"`
	URI       string    `json:"uri"` // blob store location of the raw document
	IsPrimary bool      `json:"is_primary"`
}

// OrderItem represents one logical document to extract and map.
type OrderItem struct {
	ID               uuid.UUID             `json:"id"`
	OrderID          uuid.UUID             `json:"order_id"`
	ItemType         string                `json:"item_type"`
	Status           string                `json:"status"`
	Files            []OrderFile           `json:"files"`
	MappingConfig    *MappingConfiguration `json:"mapping_config,omitempty"` // resolved, cached for audit
	ConfigProvenance *string               `json:"config_provenance,omitempty"`
	ExtractionURI    *string               `json:"extraction_uri,omitempty"` // raw extraction JSON
	MappedURI        *string               `json:"mapped_uri,omitempty"`     // joined per-item table
	ErrorMessage     *string               `json:"error_message,omitempty"`
	StartedAt        *time.Time            `json:"started_at,omitempty"`
	FinishedAt       *time.Time            `json:"finished_at,omitempty"`
}

// Primary returns the item's primary file reference, or nil.
func (i *OrderItem) Primary() *OrderFile {
	for idx := range i.Files {
		if i.Files[idx].IsPrimary {
			return &i.Files[idx]
		}
	}
	return nil
}

// Attachments returns the item's non-primary files.
func (i *OrderItem) Attachments() []OrderFile {
	var out []OrderFile
	for _, f := range i.Files {
		if !f.IsPrimary {
			out = append(out, f)
		}
	}
	return out
}
