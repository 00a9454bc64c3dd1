// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/order-mapper/db/ent/schema"
	"github.com/joseph-ayodele/order-mapper/gen/ent/columntemplate"
	"github.com/joseph-ayodele/order-mapper/gen/ent/mappingtemplate"
	"github.com/joseph-ayodele/order-mapper/gen/ent/order"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderfile"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	columntemplateFields := schema.ColumnTemplate{}.Fields()
	_ = columntemplateFields
	// columntemplateDescTemplateName is the schema descriptor for template_name field.
	columntemplateDescTemplateName := columntemplateFields[1].Descriptor()
	// columntemplate.TemplateNameValidator is a validator for the "template_name" field. It is called by the builders before save.
	columntemplate.TemplateNameValidator = columntemplateDescTemplateName.Validators[0].(func(string) error)
	// columntemplateDescVersion is the schema descriptor for version field.
	columntemplateDescVersion := columntemplateFields[2].Descriptor()
	// columntemplate.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	columntemplate.VersionValidator = columntemplateDescVersion.Validators[0].(func(int) error)
	// columntemplateDescCreatedAt is the schema descriptor for created_at field.
	columntemplateDescCreatedAt := columntemplateFields[5].Descriptor()
	// columntemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	columntemplate.DefaultCreatedAt = columntemplateDescCreatedAt.Default.(func() time.Time)
	// columntemplateDescID is the schema descriptor for id field.
	columntemplateDescID := columntemplateFields[0].Descriptor()
	// columntemplate.DefaultID holds the default value on creation for the id field.
	columntemplate.DefaultID = columntemplateDescID.Default.(func() uuid.UUID)
	mappingtemplateFields := schema.MappingTemplate{}.Fields()
	_ = mappingtemplateFields
	// mappingtemplateDescName is the schema descriptor for name field.
	mappingtemplateDescName := mappingtemplateFields[1].Descriptor()
	// mappingtemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	mappingtemplate.NameValidator = mappingtemplateDescName.Validators[0].(func(string) error)
	// mappingtemplateDescItemType is the schema descriptor for item_type field.
	mappingtemplateDescItemType := mappingtemplateFields[4].Descriptor()
	// mappingtemplate.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	mappingtemplate.ItemTypeValidator = func() func(string) error {
		validators := mappingtemplateDescItemType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(item_type string) error {
			for _, fn := range fns {
				if err := fn(item_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mappingtemplateDescIsDefault is the schema descriptor for is_default field.
	mappingtemplateDescIsDefault := mappingtemplateFields[5].Descriptor()
	// mappingtemplate.DefaultIsDefault holds the default value on creation for the is_default field.
	mappingtemplate.DefaultIsDefault = mappingtemplateDescIsDefault.Default.(bool)
	// mappingtemplateDescCreatedAt is the schema descriptor for created_at field.
	mappingtemplateDescCreatedAt := mappingtemplateFields[7].Descriptor()
	// mappingtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	mappingtemplate.DefaultCreatedAt = mappingtemplateDescCreatedAt.Default.(func() time.Time)
	// mappingtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	mappingtemplateDescUpdatedAt := mappingtemplateFields[8].Descriptor()
	// mappingtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mappingtemplate.DefaultUpdatedAt = mappingtemplateDescUpdatedAt.Default.(func() time.Time)
	// mappingtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mappingtemplate.UpdateDefaultUpdatedAt = mappingtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mappingtemplateDescID is the schema descriptor for id field.
	mappingtemplateDescID := mappingtemplateFields[0].Descriptor()
	// mappingtemplate.DefaultID holds the default value on creation for the id field.
	mappingtemplate.DefaultID = mappingtemplateDescID.Default.(func() uuid.UUID)
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescDocType is the schema descriptor for doc_type field.
	orderDescDocType := orderFields[2].Descriptor()
	// order.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	order.DocTypeValidator = orderDescDocType.Validators[0].(func(string) error)
	// orderDescStatus is the schema descriptor for status field.
	orderDescStatus := orderFields[3].Descriptor()
	// order.DefaultStatus holds the default value on creation for the status field.
	order.DefaultStatus = orderDescStatus.Default.(string)
	// order.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	order.StatusValidator = orderDescStatus.Validators[0].(func(string) error)
	// orderDescCompletedItems is the schema descriptor for completed_items field.
	orderDescCompletedItems := orderFields[4].Descriptor()
	// order.DefaultCompletedItems holds the default value on creation for the completed_items field.
	order.DefaultCompletedItems = orderDescCompletedItems.Default.(int)
	// order.CompletedItemsValidator is a validator for the "completed_items" field. It is called by the builders before save.
	order.CompletedItemsValidator = orderDescCompletedItems.Validators[0].(func(int) error)
	// orderDescFailedItems is the schema descriptor for failed_items field.
	orderDescFailedItems := orderFields[5].Descriptor()
	// order.DefaultFailedItems holds the default value on creation for the failed_items field.
	order.DefaultFailedItems = orderDescFailedItems.Default.(int)
	// order.FailedItemsValidator is a validator for the "failed_items" field. It is called by the builders before save.
	order.FailedItemsValidator = orderDescFailedItems.Validators[0].(func(int) error)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[9].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderFields[10].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orderDescID is the schema descriptor for id field.
	orderDescID := orderFields[0].Descriptor()
	// order.DefaultID holds the default value on creation for the id field.
	order.DefaultID = orderDescID.Default.(func() uuid.UUID)
	orderfileFields := schema.OrderFile{}.Fields()
	_ = orderfileFields
	// orderfileDescFilename is the schema descriptor for filename field.
	orderfileDescFilename := orderfileFields[2].Descriptor()
	// orderfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	orderfile.FilenameValidator = orderfileDescFilename.Validators[0].(func(string) error)
	// orderfileDescFileExt is the schema descriptor for file_ext field.
	orderfileDescFileExt := orderfileFields[3].Descriptor()
	// orderfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	orderfile.FileExtValidator = orderfileDescFileExt.Validators[0].(func(string) error)
	// orderfileDescURI is the schema descriptor for uri field.
	orderfileDescURI := orderfileFields[4].Descriptor()
	// orderfile.URIValidator is a validator for the "uri" field. It is called by the builders before save.
	orderfile.URIValidator = orderfileDescURI.Validators[0].(func(string) error)
	// orderfileDescContentHash is the schema descriptor for content_hash field.
	orderfileDescContentHash := orderfileFields[5].Descriptor()
	// orderfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	orderfile.ContentHashValidator = orderfileDescContentHash.Validators[0].(func([]byte) error)
	// orderfileDescIsPrimary is the schema descriptor for is_primary field.
	orderfileDescIsPrimary := orderfileFields[6].Descriptor()
	// orderfile.DefaultIsPrimary holds the default value on creation for the is_primary field.
	orderfile.DefaultIsPrimary = orderfileDescIsPrimary.Default.(bool)
	// orderfileDescUploadedAt is the schema descriptor for uploaded_at field.
	orderfileDescUploadedAt := orderfileFields[7].Descriptor()
	// orderfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	orderfile.DefaultUploadedAt = orderfileDescUploadedAt.Default.(func() time.Time)
	// orderfileDescID is the schema descriptor for id field.
	orderfileDescID := orderfileFields[0].Descriptor()
	// orderfile.DefaultID holds the default value on creation for the id field.
	orderfile.DefaultID = orderfileDescID.Default.(func() uuid.UUID)
	orderitemFields := schema.OrderItem{}.Fields()
	_ = orderitemFields
	// orderitemDescItemType is the schema descriptor for item_type field.
	orderitemDescItemType := orderitemFields[2].Descriptor()
	// orderitem.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	orderitem.ItemTypeValidator = func() func(string) error {
		validators := orderitemDescItemType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(item_type string) error {
			for _, fn := range fns {
				if err := fn(item_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// orderitemDescStatus is the schema descriptor for status field.
	orderitemDescStatus := orderitemFields[3].Descriptor()
	// orderitem.DefaultStatus holds the default value on creation for the status field.
	orderitem.DefaultStatus = orderitemDescStatus.Default.(string)
	// orderitem.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	orderitem.StatusValidator = orderitemDescStatus.Validators[0].(func(string) error)
	// orderitemDescCreatedAt is the schema descriptor for created_at field.
	orderitemDescCreatedAt := orderitemFields[11].Descriptor()
	// orderitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	orderitem.DefaultCreatedAt = orderitemDescCreatedAt.Default.(func() time.Time)
	// orderitemDescID is the schema descriptor for id field.
	orderitemDescID := orderitemFields[0].Descriptor()
	// orderitem.DefaultID holds the default value on creation for the id field.
	orderitem.DefaultID = orderitemDescID.Default.(func() uuid.UUID)
}
