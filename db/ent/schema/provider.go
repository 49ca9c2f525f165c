package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Provider struct{ ent.Schema }

func (Provider) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "providers"},
	}
}

func (Provider) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("first_name").NotEmpty(),
		field.String("last_name").NotEmpty(),
		field.String("specialty").NotEmpty().MaxLen(100),
		field.String("license_number").NotEmpty().MaxLen(50),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Provider) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patients", Patient.Type),
		edge.To("records", Record.Type),
	}
}
