// Code generated by ent, DO NOT EDIT.

package orderitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/order-mapper/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldID, id))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldOrderID, v))
}

// ItemType applies equality check predicate on the "item_type" field. It's identical to ItemTypeEQ.
func ItemType(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldItemType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldStatus, v))
}

// ConfigProvenance applies equality check predicate on the "config_provenance" field. It's identical to ConfigProvenanceEQ.
func ConfigProvenance(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldConfigProvenance, v))
}

// ExtractionURI applies equality check predicate on the "extraction_uri" field. It's identical to ExtractionURIEQ.
func ExtractionURI(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldExtractionURI, v))
}

// MappedURI applies equality check predicate on the "mapped_uri" field. It's identical to MappedURIEQ.
func MappedURI(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldMappedURI, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldFinishedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldCreatedAt, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldOrderID, vs...))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldItemType, vs...))
}

// ItemTypeGT applies the GT predicate on the "item_type" field.
func ItemTypeGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldItemType, v))
}

// ItemTypeGTE applies the GTE predicate on the "item_type" field.
func ItemTypeGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldItemType, v))
}

// ItemTypeLT applies the LT predicate on the "item_type" field.
func ItemTypeLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldItemType, v))
}

// ItemTypeLTE applies the LTE predicate on the "item_type" field.
func ItemTypeLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldItemType, v))
}

// ItemTypeContains applies the Contains predicate on the "item_type" field.
func ItemTypeContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldItemType, v))
}

// ItemTypeHasPrefix applies the HasPrefix predicate on the "item_type" field.
func ItemTypeHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldItemType, v))
}

// ItemTypeHasSuffix applies the HasSuffix predicate on the "item_type" field.
func ItemTypeHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldItemType, v))
}

// ItemTypeEqualFold applies the EqualFold predicate on the "item_type" field.
func ItemTypeEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldItemType, v))
}

// ItemTypeContainsFold applies the ContainsFold predicate on the "item_type" field.
func ItemTypeContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldItemType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldStatus, v))
}

// MappingConfigIsNil applies the IsNil predicate on the "mapping_config" field.
func MappingConfigIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldMappingConfig))
}

// MappingConfigNotNil applies the NotNil predicate on the "mapping_config" field.
func MappingConfigNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldMappingConfig))
}

// ConfigProvenanceEQ applies the EQ predicate on the "config_provenance" field.
func ConfigProvenanceEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldConfigProvenance, v))
}

// ConfigProvenanceNEQ applies the NEQ predicate on the "config_provenance" field.
func ConfigProvenanceNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldConfigProvenance, v))
}

// ConfigProvenanceIn applies the In predicate on the "config_provenance" field.
func ConfigProvenanceIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldConfigProvenance, vs...))
}

// ConfigProvenanceNotIn applies the NotIn predicate on the "config_provenance" field.
func ConfigProvenanceNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldConfigProvenance, vs...))
}

// ConfigProvenanceGT applies the GT predicate on the "config_provenance" field.
func ConfigProvenanceGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldConfigProvenance, v))
}

// ConfigProvenanceGTE applies the GTE predicate on the "config_provenance" field.
func ConfigProvenanceGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldConfigProvenance, v))
}

// ConfigProvenanceLT applies the LT predicate on the "config_provenance" field.
func ConfigProvenanceLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldConfigProvenance, v))
}

// ConfigProvenanceLTE applies the LTE predicate on the "config_provenance" field.
func ConfigProvenanceLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldConfigProvenance, v))
}

// ConfigProvenanceContains applies the Contains predicate on the "config_provenance" field.
func ConfigProvenanceContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldConfigProvenance, v))
}

// ConfigProvenanceHasPrefix applies the HasPrefix predicate on the "config_provenance" field.
func ConfigProvenanceHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldConfigProvenance, v))
}

// ConfigProvenanceHasSuffix applies the HasSuffix predicate on the "config_provenance" field.
func ConfigProvenanceHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldConfigProvenance, v))
}

// ConfigProvenanceIsNil applies the IsNil predicate on the "config_provenance" field.
func ConfigProvenanceIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldConfigProvenance))
}

// ConfigProvenanceNotNil applies the NotNil predicate on the "config_provenance" field.
func ConfigProvenanceNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldConfigProvenance))
}

// ConfigProvenanceEqualFold applies the EqualFold predicate on the "config_provenance" field.
func ConfigProvenanceEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldConfigProvenance, v))
}

// ConfigProvenanceContainsFold applies the ContainsFold predicate on the "config_provenance" field.
func ConfigProvenanceContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldConfigProvenance, v))
}

// ExtractionURIEQ applies the EQ predicate on the "extraction_uri" field.
func ExtractionURIEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldExtractionURI, v))
}

// ExtractionURINEQ applies the NEQ predicate on the "extraction_uri" field.
func ExtractionURINEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldExtractionURI, v))
}

// ExtractionURIIn applies the In predicate on the "extraction_uri" field.
func ExtractionURIIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldExtractionURI, vs...))
}

// ExtractionURINotIn applies the NotIn predicate on the "extraction_uri" field.
func ExtractionURINotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldExtractionURI, vs...))
}

// ExtractionURIGT applies the GT predicate on the "extraction_uri" field.
func ExtractionURIGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldExtractionURI, v))
}

// ExtractionURIGTE applies the GTE predicate on the "extraction_uri" field.
func ExtractionURIGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldExtractionURI, v))
}

// ExtractionURILT applies the LT predicate on the "extraction_uri" field.
func ExtractionURILT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldExtractionURI, v))
}

// ExtractionURILTE applies the LTE predicate on the "extraction_uri" field.
func ExtractionURILTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldExtractionURI, v))
}

// ExtractionURIContains applies the Contains predicate on the "extraction_uri" field.
func ExtractionURIContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldExtractionURI, v))
}

// ExtractionURIHasPrefix applies the HasPrefix predicate on the "extraction_uri" field.
func ExtractionURIHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldExtractionURI, v))
}

// ExtractionURIHasSuffix applies the HasSuffix predicate on the "extraction_uri" field.
func ExtractionURIHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldExtractionURI, v))
}

// ExtractionURIIsNil applies the IsNil predicate on the "extraction_uri" field.
func ExtractionURIIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldExtractionURI))
}

// ExtractionURINotNil applies the NotNil predicate on the "extraction_uri" field.
func ExtractionURINotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldExtractionURI))
}

// ExtractionURIEqualFold applies the EqualFold predicate on the "extraction_uri" field.
func ExtractionURIEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldExtractionURI, v))
}

// ExtractionURIContainsFold applies the ContainsFold predicate on the "extraction_uri" field.
func ExtractionURIContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldExtractionURI, v))
}

// MappedURIEQ applies the EQ predicate on the "mapped_uri" field.
func MappedURIEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldMappedURI, v))
}

// MappedURINEQ applies the NEQ predicate on the "mapped_uri" field.
func MappedURINEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldMappedURI, v))
}

// MappedURIIn applies the In predicate on the "mapped_uri" field.
func MappedURIIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldMappedURI, vs...))
}

// MappedURINotIn applies the NotIn predicate on the "mapped_uri" field.
func MappedURINotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldMappedURI, vs...))
}

// MappedURIGT applies the GT predicate on the "mapped_uri" field.
func MappedURIGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldMappedURI, v))
}

// MappedURIGTE applies the GTE predicate on the "mapped_uri" field.
func MappedURIGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldMappedURI, v))
}

// MappedURILT applies the LT predicate on the "mapped_uri" field.
func MappedURILT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldMappedURI, v))
}

// MappedURILTE applies the LTE predicate on the "mapped_uri" field.
func MappedURILTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldMappedURI, v))
}

// MappedURIContains applies the Contains predicate on the "mapped_uri" field.
func MappedURIContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldMappedURI, v))
}

// MappedURIHasPrefix applies the HasPrefix predicate on the "mapped_uri" field.
func MappedURIHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldMappedURI, v))
}

// MappedURIHasSuffix applies the HasSuffix predicate on the "mapped_uri" field.
func MappedURIHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldMappedURI, v))
}

// MappedURIIsNil applies the IsNil predicate on the "mapped_uri" field.
func MappedURIIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldMappedURI))
}

// MappedURINotNil applies the NotNil predicate on the "mapped_uri" field.
func MappedURINotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldMappedURI))
}

// MappedURIEqualFold applies the EqualFold predicate on the "mapped_uri" field.
func MappedURIEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldMappedURI, v))
}

// MappedURIContainsFold applies the ContainsFold predicate on the "mapped_uri" field.
func MappedURIContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldMappedURI, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldFinishedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasOrder applies the HasEdge predicate on the "order" edge.
func HasOrder() predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrderTable, OrderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderWith applies the HasEdge predicate on the "order" edge with a given conditions (other predicates).
func HasOrderWith(preds ...predicate.Order) predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := newOrderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.OrderFile) predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.NotPredicates(p))
}
