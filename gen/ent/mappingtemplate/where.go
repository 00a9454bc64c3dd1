// Code generated by ent, DO NOT EDIT.

package mappingtemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/order-mapper/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldName, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldCompanyID, v))
}

// DocType applies equality check predicate on the "doc_type" field. It's identical to DocTypeEQ.
func DocType(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldDocType, v))
}

// ItemType applies equality check predicate on the "item_type" field. It's identical to ItemTypeEQ.
func ItemType(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldItemType, v))
}

// IsDefault applies equality check predicate on the "is_default" field. It's identical to IsDefaultEQ.
func IsDefault(v bool) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldIsDefault, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldContainsFold(FieldName, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v uuid.UUID) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNotNull(FieldCompanyID))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNotIn(FieldDocType, vs...))
}

// DocTypeGT applies the GT predicate on the "doc_type" field.
func DocTypeGT(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGT(FieldDocType, v))
}

// DocTypeGTE applies the GTE predicate on the "doc_type" field.
func DocTypeGTE(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGTE(FieldDocType, v))
}

// DocTypeLT applies the LT predicate on the "doc_type" field.
func DocTypeLT(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLT(FieldDocType, v))
}

// DocTypeLTE applies the LTE predicate on the "doc_type" field.
func DocTypeLTE(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLTE(FieldDocType, v))
}

// DocTypeContains applies the Contains predicate on the "doc_type" field.
func DocTypeContains(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldContains(FieldDocType, v))
}

// DocTypeHasPrefix applies the HasPrefix predicate on the "doc_type" field.
func DocTypeHasPrefix(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldHasPrefix(FieldDocType, v))
}

// DocTypeHasSuffix applies the HasSuffix predicate on the "doc_type" field.
func DocTypeHasSuffix(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldHasSuffix(FieldDocType, v))
}

// DocTypeIsNil applies the IsNil predicate on the "doc_type" field.
func DocTypeIsNil() predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldIsNull(FieldDocType))
}

// DocTypeNotNil applies the NotNil predicate on the "doc_type" field.
func DocTypeNotNil() predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNotNull(FieldDocType))
}

// DocTypeEqualFold applies the EqualFold predicate on the "doc_type" field.
func DocTypeEqualFold(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEqualFold(FieldDocType, v))
}

// DocTypeContainsFold applies the ContainsFold predicate on the "doc_type" field.
func DocTypeContainsFold(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldContainsFold(FieldDocType, v))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNotIn(FieldItemType, vs...))
}

// ItemTypeGT applies the GT predicate on the "item_type" field.
func ItemTypeGT(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGT(FieldItemType, v))
}

// ItemTypeGTE applies the GTE predicate on the "item_type" field.
func ItemTypeGTE(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGTE(FieldItemType, v))
}

// ItemTypeLT applies the LT predicate on the "item_type" field.
func ItemTypeLT(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLT(FieldItemType, v))
}

// ItemTypeLTE applies the LTE predicate on the "item_type" field.
func ItemTypeLTE(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLTE(FieldItemType, v))
}

// ItemTypeContains applies the Contains predicate on the "item_type" field.
func ItemTypeContains(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldContains(FieldItemType, v))
}

// ItemTypeHasPrefix applies the HasPrefix predicate on the "item_type" field.
func ItemTypeHasPrefix(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldHasPrefix(FieldItemType, v))
}

// ItemTypeHasSuffix applies the HasSuffix predicate on the "item_type" field.
func ItemTypeHasSuffix(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldHasSuffix(FieldItemType, v))
}

// ItemTypeEqualFold applies the EqualFold predicate on the "item_type" field.
func ItemTypeEqualFold(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEqualFold(FieldItemType, v))
}

// ItemTypeContainsFold applies the ContainsFold predicate on the "item_type" field.
func ItemTypeContainsFold(v string) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldContainsFold(FieldItemType, v))
}

// IsDefaultEQ applies the EQ predicate on the "is_default" field.
func IsDefaultEQ(v bool) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldIsDefault, v))
}

// IsDefaultNEQ applies the NEQ predicate on the "is_default" field.
func IsDefaultNEQ(v bool) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNEQ(FieldIsDefault, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MappingTemplate) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MappingTemplate) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MappingTemplate) predicate.MappingTemplate {
	return predicate.MappingTemplate(sql.NotPredicates(p))
}
