package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/gen/ent"
	"github.com/joseph-ayodele/order-mapper/gen/ent/columntemplate"
	"github.com/joseph-ayodele/order-mapper/gen/ent/mappingtemplate"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
)

type TemplateRepository interface {
	// ListCandidates returns every mapping template whose scope admits the
	// given company and doc type, wildcards included. Specificity ranking
	// is the resolver's job, not the query's.
	ListCandidates(ctx context.Context, companyID uuid.UUID, docType, itemType string) ([]*entity.MappingTemplate, error)
	CreateMappingTemplate(ctx context.Context, t *entity.MappingTemplate) (*entity.MappingTemplate, error)
	// GetColumnTemplate returns the highest version stored under the name.
	GetColumnTemplate(ctx context.Context, name string) (*entity.ColumnTemplate, error)
	CreateColumnTemplate(ctx context.Context, t *entity.ColumnTemplate) error
}

type templateRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTemplateRepository(client *ent.Client, logger *slog.Logger) TemplateRepository {
	return &templateRepository{client: client, logger: logger}
}

func (r *templateRepository) ListCandidates(ctx context.Context, companyID uuid.UUID, docType, itemType string) ([]*entity.MappingTemplate, error) {
	rows, err := r.client.MappingTemplate.Query().
		Where(
			mappingtemplate.ItemType(itemType),
			mappingtemplate.Or(
				mappingtemplate.CompanyID(companyID),
				mappingtemplate.CompanyIDIsNil(),
			),
			mappingtemplate.Or(
				mappingtemplate.DocType(docType),
				mappingtemplate.DocTypeIsNil(),
			),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list mapping templates", "company_id", companyID, "doc_type", docType, "error", err)
		return nil, err
	}
	out := make([]*entity.MappingTemplate, 0, len(rows))
	for _, row := range rows {
		t, err := toMappingTemplate(row)
		if err != nil {
			// a corrupt template must not hide the valid ones
			r.logger.Warn("skipping unparsable mapping template", "template_id", row.ID, "error", err)
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *templateRepository) CreateMappingTemplate(ctx context.Context, t *entity.MappingTemplate) (*entity.MappingTemplate, error) {
	if err := t.Config.Validate(t.ItemType); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(t.Config)
	if err != nil {
		return nil, err
	}
	row, err := r.client.MappingTemplate.Create().
		SetName(t.Name).
		SetNillableCompanyID(t.CompanyID).
		SetNillableDocType(t.DocType).
		SetItemType(t.ItemType).
		SetIsDefault(t.IsDefault).
		SetConfig(raw).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	r.logger.Info("mapping template created", "template_id", row.ID, "name", t.Name, "is_default", t.IsDefault)
	return toMappingTemplate(row)
}

func (r *templateRepository) GetColumnTemplate(ctx context.Context, name string) (*entity.ColumnTemplate, error) {
	row, err := r.client.ColumnTemplate.Query().
		Where(columntemplate.TemplateName(name)).
		Order(columntemplate.ByVersion(entsql.OrderDesc())).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("NOT_FOUND", "column template not found", common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return toColumnTemplate(row)
}

func (r *templateRepository) CreateColumnTemplate(ctx context.Context, t *entity.ColumnTemplate) error {
	if err := t.Validate(); err != nil {
		return err
	}
	defs, err := json.Marshal(t.ColumnDefinitions)
	if err != nil {
		return err
	}
	err = r.client.ColumnTemplate.Create().
		SetTemplateName(t.TemplateName).
		SetVersion(t.Version).
		SetColumnOrder(t.ColumnOrder).
		SetColumnDefinitions(defs).
		Exec(ctx)
	if err != nil {
		return err
	}
	r.logger.Info("column template created", "name", t.TemplateName, "version", t.Version)
	return nil
}
