package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ColumnTemplate struct{ ent.Schema }

func (ColumnTemplate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "column_templates"},
	}
}

func (ColumnTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("template_name").NotEmpty(),
		field.Int("version").Positive(),
		field.JSON("column_order", []string{}),
		field.JSON("column_definitions", json.RawMessage{}),
		field.Time("created_at").Default(time.Now),
	}
}

func (ColumnTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("template_name", "version").Unique(),
	}
}
