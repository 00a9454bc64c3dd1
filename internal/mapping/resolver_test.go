package mapping

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
)

type fakeTemplates struct {
	templates []*entity.MappingTemplate
	err       error
}

func (f *fakeTemplates) ListCandidates(_ context.Context, companyID uuid.UUID, docType, itemType string) ([]*entity.MappingTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.MappingTemplate
	for _, t := range f.templates {
		if t.ItemType != itemType {
			continue
		}
		if t.CompanyID != nil && *t.CompanyID != companyID {
			continue
		}
		if t.DocType != nil && *t.DocType != docType {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTemplates) CreateMappingTemplate(_ context.Context, t *entity.MappingTemplate) (*entity.MappingTemplate, error) {
	f.templates = append(f.templates, t)
	return t, nil
}

func (f *fakeTemplates) GetColumnTemplate(context.Context, string) (*entity.ColumnTemplate, error) {
	return nil, nil
}

func (f *fakeTemplates) CreateColumnTemplate(context.Context, *entity.ColumnTemplate) error {
	return nil
}

func validConfig(itemType string) entity.MappingConfiguration {
	return entity.MappingConfiguration{
		ItemType:              itemType,
		ExternalReferencePath: "refs/master.csv",
		ExternalJoinKeys:      []string{"invoice_number"},
		InternalJoinKey:       "invoice_number",
	}
}

func tpl(name string, companyID *uuid.UUID, docType *string, isDefault bool) *entity.MappingTemplate {
	return &entity.MappingTemplate{
		ID:        uuid.New(),
		Name:      name,
		CompanyID: companyID,
		DocType:   docType,
		ItemType:  string(constants.SingleSource),
		IsDefault: isDefault,
		Config:    validConfig(string(constants.SingleSource)),
	}
}

func TestResolvePrefersConsistentItemConfig(t *testing.T) {
	r := NewResolver(&fakeTemplates{}, nil)
	current := validConfig(string(constants.SingleSource))

	cfg, prov, err := r.Resolve(context.Background(), uuid.New(), "invoice", string(constants.SingleSource), &current)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ProvenanceItem, prov)
	assert.Equal(t, "refs/master.csv", cfg.ExternalReferencePath)
}

func TestResolveRejectsInconsistentItemConfig(t *testing.T) {
	company := uuid.New()
	doc := "invoice"
	repo := &fakeTemplates{templates: []*entity.MappingTemplate{
		tpl("fallback", nil, nil, false),
	}}
	r := NewResolver(repo, nil)

	// cached config declares the wrong item type, so the resolver falls
	// through to templates
	stale := validConfig(string(constants.MultiSource))
	cfg, prov, err := r.Resolve(context.Background(), company, doc, string(constants.SingleSource), &stale)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, strings.HasPrefix(prov, "template:fallback/"), "provenance %q", prov)
}

func TestResolveExplicitDefaultWins(t *testing.T) {
	company := uuid.New()
	doc := "invoice"
	repo := &fakeTemplates{templates: []*entity.MappingTemplate{
		tpl("scoped", &company, &doc, false),
		tpl("scoped-default", &company, &doc, true),
		tpl("global", nil, nil, false),
	}}
	r := NewResolver(repo, nil)

	_, prov, err := r.Resolve(context.Background(), company, doc, string(constants.SingleSource), nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(prov, "template:scoped-default/"), "provenance %q", prov)
}

func TestResolveMostSpecificScopeWins(t *testing.T) {
	company := uuid.New()
	doc := "invoice"
	repo := &fakeTemplates{templates: []*entity.MappingTemplate{
		tpl("global", nil, nil, false),
		tpl("doc-only", nil, &doc, false),
		tpl("company-only", &company, nil, false),
	}}
	r := NewResolver(repo, nil)

	_, prov, err := r.Resolve(context.Background(), company, doc, string(constants.SingleSource), nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(prov, "template:company-only/"), "provenance %q", prov)
}

func TestResolveNothingApplicable(t *testing.T) {
	r := NewResolver(&fakeTemplates{}, nil)

	cfg, prov, err := r.Resolve(context.Background(), uuid.New(), "invoice", string(constants.SingleSource), nil)
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.Empty(t, prov)
}

func TestResolveSkipsInvalidTemplates(t *testing.T) {
	company := uuid.New()
	broken := tpl("broken", &company, nil, true)
	broken.Config.ExternalJoinKeys = nil
	repo := &fakeTemplates{templates: []*entity.MappingTemplate{
		broken,
		tpl("usable", nil, nil, false),
	}}
	r := NewResolver(repo, nil)

	cfg, prov, err := r.Resolve(context.Background(), company, "invoice", string(constants.SingleSource), nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, strings.HasPrefix(prov, "template:usable/"), "provenance %q", prov)
}
