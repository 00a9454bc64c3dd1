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

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/db/ent/schema/utils"
)

type MappingTemplate struct{ ent.Schema }

func (MappingTemplate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "mapping_templates"},
	}
}

func (MappingTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		// nil scope fields mean "any company" / "any doc type"
		field.UUID("company_id", uuid.UUID{}).Optional().Nillable(),
		field.String("doc_type").Optional().Nillable(),
		field.String("item_type").NotEmpty().
			Validate(utils.EnumValidator(constants.ItemTypes...)),
		field.Bool("is_default").Default(false),
		field.JSON("config", json.RawMessage{}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (MappingTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "doc_type", "item_type"),
		index.Fields("is_default", "item_type"),
	}
}
