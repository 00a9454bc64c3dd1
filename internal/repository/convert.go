package repository

import (
	"encoding/json"

	"github.com/joseph-ayodele/order-mapper/gen/ent"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
)

func toOrder(e *ent.Order) *entity.Order {
	o := &entity.Order{
		ID:             e.ID,
		CompanyID:      e.CompanyID,
		DocType:        e.DocType,
		Status:         e.Status,
		CompletedItems: e.CompletedItems,
		FailedItems:    e.FailedItems,
		ResultURIs:     e.ResultUris,
		ErrorMessage:   e.ErrorMessage,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if len(e.MappingConfig) > 0 {
		if cfg, err := entity.ParseMappingConfiguration(e.MappingConfig); err == nil {
			o.MappingConfig = cfg
		}
	}
	return o
}

// toOrderItem maps an item row plus its loaded files edge. The mapping
// configuration snapshot is decoded lazily by callers that need it; here it
// stays raw so listing items never fails on a stale snapshot.
func toOrderItem(e *ent.OrderItem) *entity.OrderItem {
	item := &entity.OrderItem{
		ID:               e.ID,
		OrderID:          e.OrderID,
		ItemType:         e.ItemType,
		Status:           e.Status,
		ConfigProvenance: e.ConfigProvenance,
		ExtractionURI:    e.ExtractionURI,
		MappedURI:        e.MappedURI,
		ErrorMessage:     e.ErrorMessage,
		StartedAt:        e.StartedAt,
		FinishedAt:       e.FinishedAt,
	}
	if len(e.MappingConfig) > 0 {
		if cfg, err := entity.ParseMappingConfiguration(e.MappingConfig); err == nil {
			item.MappingConfig = cfg
		}
	}
	for _, f := range e.Edges.Files {
		item.Files = append(item.Files, entity.OrderFile{
			FileID:    f.ID,
			Filename:  f.Filename,
			URI:       f.URI,
			IsPrimary: f.IsPrimary,
		})
	}
	return item
}

func toMappingTemplate(e *ent.MappingTemplate) (*entity.MappingTemplate, error) {
	cfg, err := entity.ParseMappingConfiguration(e.Config)
	if err != nil {
		return nil, err
	}
	return &entity.MappingTemplate{
		ID:        e.ID,
		Name:      e.Name,
		CompanyID: e.CompanyID,
		DocType:   e.DocType,
		ItemType:  e.ItemType,
		IsDefault: e.IsDefault,
		Config:    *cfg,
	}, nil
}

func toColumnTemplate(e *ent.ColumnTemplate) (*entity.ColumnTemplate, error) {
	t := &entity.ColumnTemplate{
		TemplateName: e.TemplateName,
		Version:      e.Version,
		ColumnOrder:  e.ColumnOrder,
	}
	if err := json.Unmarshal(e.ColumnDefinitions, &t.ColumnDefinitions); err != nil {
		return nil, common.NewAppError(common.CodeConfiguration, "stored column definitions are not valid JSON", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
