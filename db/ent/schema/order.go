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

type Order struct{ ent.Schema }

func (Order) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "orders"},
	}
}

func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("company_id", uuid.UUID{}),
		field.String("doc_type").NotEmpty(),
		field.String("status").
			Default(string(constants.OrderStatusPending)).
			Validate(utils.EnumValidator(constants.OrderStatuses...)),
		field.Int("completed_items").Default(0).NonNegative(),
		field.Int("failed_items").Default(0).NonNegative(),
		// artifact name -> blob uri, filled as stages finish
		field.JSON("result_uris", map[string]string{}).Optional(),
		// order-wide mapping configuration, used when an item carries none
		field.JSON("mapping_config", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE order -> MANY items
		edge.To("items", OrderItem.Type),
	}
}

func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "status", "created_at"),
	}
}
