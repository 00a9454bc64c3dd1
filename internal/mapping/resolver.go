// Package mapping resolves which mapping configuration applies to an item.
package mapping

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/repository"
)

// ProvenanceItem marks a configuration carried over from the item itself.
const ProvenanceItem = "item"

type Resolver struct {
	templates repository.TemplateRepository
	logger    *slog.Logger
}

func NewResolver(templates repository.TemplateRepository, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{templates: templates, logger: logger}
}

// Resolve picks the configuration for one item. Precedence: the item's own
// cached configuration when still consistent with its type, then the explicit
// default template for the exact scope, then the most specific remaining
// template (company beats doc type, both beat global). Returns (nil, "", nil)
// when nothing applies; the caller decides what that means for the order.
func (r *Resolver) Resolve(ctx context.Context, companyID uuid.UUID, docType, itemType string, current *entity.MappingConfiguration) (*entity.MappingConfiguration, string, error) {
	if current != nil {
		if err := current.Validate(itemType); err == nil {
			return current, ProvenanceItem, nil
		}
		r.logger.Warn("cached item configuration no longer valid, re-resolving",
			"company_id", companyID, "doc_type", docType, "item_type", itemType)
	}

	candidates, err := r.templates.ListCandidates(ctx, companyID, docType, itemType)
	if err != nil {
		return nil, "", err
	}

	valid := candidates[:0]
	for _, t := range candidates {
		if err := t.Config.Validate(itemType); err != nil {
			r.logger.Warn("skipping invalid mapping template", "template", t.Name, "error", err)
			continue
		}
		valid = append(valid, t)
	}
	if len(valid) == 0 {
		return nil, "", nil
	}

	// An explicit default for the exact scope short-circuits ranking.
	for _, t := range valid {
		if t.IsDefault && scopeScore(t) == scoreExact {
			return configOf(t)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		si, sj := scopeScore(valid[i]), scopeScore(valid[j])
		if si != sj {
			return si > sj
		}
		if valid[i].IsDefault != valid[j].IsDefault {
			return valid[i].IsDefault
		}
		return valid[i].Name < valid[j].Name
	})
	return configOf(valid[0])
}

const (
	scoreGlobal  = 0
	scoreDocOnly = 1
	scoreCompany = 2
	scoreExact   = 3
)

// scopeScore ranks how specific a template's scope is. The repository query
// already filtered out templates that do not admit the item, so a non-nil
// scope field means an exact match.
func scopeScore(t *entity.MappingTemplate) int {
	s := scoreGlobal
	if t.CompanyID != nil {
		s += scoreCompany
	}
	if t.DocType != nil {
		s += scoreDocOnly
	}
	return s
}

func configOf(t *entity.MappingTemplate) (*entity.MappingConfiguration, string, error) {
	cfg := t.Config
	return &cfg, fmt.Sprintf("template:%s/%s", t.Name, t.ID), nil
}
