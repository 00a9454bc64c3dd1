package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type OrderFile struct {
	ent.Schema
}

func (OrderFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "order_files"},
	}
}

func (OrderFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define a composite unique index
		field.UUID("item_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("uri").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		// the primary document for multi-source items
		field.Bool("is_primary").Default(false),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (OrderFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE item
		edge.From("item", OrderItem.Type).
			Ref("files").
			Field("item_id").
			Required().
			Unique(),
	}
}

func (OrderFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "content_hash").Unique(),
	}
}
