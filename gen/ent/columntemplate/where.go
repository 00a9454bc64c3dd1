// Code generated by ent, DO NOT EDIT.

package columntemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/order-mapper/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldLTE(FieldID, id))
}

// TemplateName applies equality check predicate on the "template_name" field. It's identical to TemplateNameEQ.
func TemplateName(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldEQ(FieldTemplateName, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// TemplateNameEQ applies the EQ predicate on the "template_name" field.
func TemplateNameEQ(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldEQ(FieldTemplateName, v))
}

// TemplateNameNEQ applies the NEQ predicate on the "template_name" field.
func TemplateNameNEQ(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldNEQ(FieldTemplateName, v))
}

// TemplateNameIn applies the In predicate on the "template_name" field.
func TemplateNameIn(vs ...string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldIn(FieldTemplateName, vs...))
}

// TemplateNameNotIn applies the NotIn predicate on the "template_name" field.
func TemplateNameNotIn(vs ...string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldNotIn(FieldTemplateName, vs...))
}

// TemplateNameGT applies the GT predicate on the "template_name" field.
func TemplateNameGT(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldGT(FieldTemplateName, v))
}

// TemplateNameGTE applies the GTE predicate on the "template_name" field.
func TemplateNameGTE(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldGTE(FieldTemplateName, v))
}

// TemplateNameLT applies the LT predicate on the "template_name" field.
func TemplateNameLT(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldLT(FieldTemplateName, v))
}

// TemplateNameLTE applies the LTE predicate on the "template_name" field.
func TemplateNameLTE(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldLTE(FieldTemplateName, v))
}

// TemplateNameContains applies the Contains predicate on the "template_name" field.
func TemplateNameContains(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldContains(FieldTemplateName, v))
}

// TemplateNameHasPrefix applies the HasPrefix predicate on the "template_name" field.
func TemplateNameHasPrefix(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldHasPrefix(FieldTemplateName, v))
}

// TemplateNameHasSuffix applies the HasSuffix predicate on the "template_name" field.
func TemplateNameHasSuffix(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldHasSuffix(FieldTemplateName, v))
}

// TemplateNameEqualFold applies the EqualFold predicate on the "template_name" field.
func TemplateNameEqualFold(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldEqualFold(FieldTemplateName, v))
}

// TemplateNameContainsFold applies the ContainsFold predicate on the "template_name" field.
func TemplateNameContainsFold(v string) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldContainsFold(FieldTemplateName, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ColumnTemplate) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ColumnTemplate) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ColumnTemplate) predicate.ColumnTemplate {
	return predicate.ColumnTemplate(sql.NotPredicates(p))
}
