// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ColumnTemplatesColumns holds the columns for the "column_templates" table.
	ColumnTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "template_name", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "column_order", Type: field.TypeJSON},
		{Name: "column_definitions", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ColumnTemplatesTable holds the schema information for the "column_templates" table.
	ColumnTemplatesTable = &schema.Table{
		Name:       "column_templates",
		Columns:    ColumnTemplatesColumns,
		PrimaryKey: []*schema.Column{ColumnTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "columntemplate_template_name_version",
				Unique:  true,
				Columns: []*schema.Column{ColumnTemplatesColumns[1], ColumnTemplatesColumns[2]},
			},
		},
	}
	// MappingTemplatesColumns holds the columns for the "mapping_templates" table.
	MappingTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "company_id", Type: field.TypeUUID, Nullable: true},
		{Name: "doc_type", Type: field.TypeString, Nullable: true},
		{Name: "item_type", Type: field.TypeString},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "config", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MappingTemplatesTable holds the schema information for the "mapping_templates" table.
	MappingTemplatesTable = &schema.Table{
		Name:       "mapping_templates",
		Columns:    MappingTemplatesColumns,
		PrimaryKey: []*schema.Column{MappingTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mappingtemplate_company_id_doc_type_item_type",
				Unique:  false,
				Columns: []*schema.Column{MappingTemplatesColumns[2], MappingTemplatesColumns[3], MappingTemplatesColumns[4]},
			},
			{
				Name:    "mappingtemplate_is_default_item_type",
				Unique:  false,
				Columns: []*schema.Column{MappingTemplatesColumns[5], MappingTemplatesColumns[4]},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_id", Type: field.TypeUUID},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "completed_items", Type: field.TypeInt, Default: 0},
		{Name: "failed_items", Type: field.TypeInt, Default: 0},
		{Name: "result_uris", Type: field.TypeJSON, Nullable: true},
		{Name: "mapping_config", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "order_company_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[1], OrdersColumns[3], OrdersColumns[9]},
			},
		},
	}
	// OrderFilesColumns holds the columns for the "order_files" table.
	OrderFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "uri", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeUUID},
	}
	// OrderFilesTable holds the schema information for the "order_files" table.
	OrderFilesTable = &schema.Table{
		Name:       "order_files",
		Columns:    OrderFilesColumns,
		PrimaryKey: []*schema.Column{OrderFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_files_order_items_files",
				Columns:    []*schema.Column{OrderFilesColumns[7]},
				RefColumns: []*schema.Column{OrderItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orderfile_item_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{OrderFilesColumns[7], OrderFilesColumns[4]},
			},
		},
	}
	// OrderItemsColumns holds the columns for the "order_items" table.
	OrderItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "item_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "mapping_config", Type: field.TypeJSON, Nullable: true},
		{Name: "config_provenance", Type: field.TypeString, Nullable: true},
		{Name: "extraction_uri", Type: field.TypeString, Nullable: true},
		{Name: "mapped_uri", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "order_id", Type: field.TypeUUID},
	}
	// OrderItemsTable holds the schema information for the "order_items" table.
	OrderItemsTable = &schema.Table{
		Name:       "order_items",
		Columns:    OrderItemsColumns,
		PrimaryKey: []*schema.Column{OrderItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_items_orders_items",
				Columns:    []*schema.Column{OrderItemsColumns[11]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orderitem_order_id_status",
				Unique:  false,
				Columns: []*schema.Column{OrderItemsColumns[11], OrderItemsColumns[2]},
			},
			{
				Name:    "orderitem_order_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrderItemsColumns[11], OrderItemsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ColumnTemplatesTable,
		MappingTemplatesTable,
		OrdersTable,
		OrderFilesTable,
		OrderItemsTable,
	}
)

func init() {
	ColumnTemplatesTable.Annotation = &entsql.Annotation{
		Table: "column_templates",
	}
	MappingTemplatesTable.Annotation = &entsql.Annotation{
		Table: "mapping_templates",
	}
	OrdersTable.Annotation = &entsql.Annotation{
		Table: "orders",
	}
	OrderFilesTable.ForeignKeys[0].RefTable = OrderItemsTable
	OrderFilesTable.Annotation = &entsql.Annotation{
		Table: "order_files",
	}
	OrderItemsTable.ForeignKeys[0].RefTable = OrdersTable
	OrderItemsTable.Annotation = &entsql.Annotation{
		Table: "order_items",
	}
}
