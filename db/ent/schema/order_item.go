package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/db/ent/schema/utils"
)

type OrderItem struct{ ent.Schema }

func (OrderItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "order_items"},
	}
}

func (OrderItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK for composite indexes
		field.UUID("order_id", uuid.UUID{}),
		field.String("item_type").NotEmpty().
			Validate(utils.EnumValidator(constants.ItemTypes...)),
		field.String("status").
			Default(string(constants.ItemStatusPending)).
			Validate(utils.EnumValidator(constants.ItemStatuses...)),
		// resolved mapping configuration, snapshotted at resolve time
		field.JSON("mapping_config", json.RawMessage{}).Optional(),
		field.String("config_provenance").Optional().Nillable(),
		field.String("extraction_uri").Optional().Nillable(),
		field.String("mapped_uri").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (OrderItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE order (FK: order_items.order_id)
		edge.From("order", Order.Type).
			Ref("items").
			Field("order_id").
			Required().
			Unique(),
		// ONE item -> MANY files
		edge.To("files", OrderFile.Type),
	}
}

func (OrderItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id", "status"),
		index.Fields("order_id", "created_at"),
	}
}
