package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Patient struct{ ent.Schema }

func (Patient) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "patients"},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("first_name").NotEmpty(),
		field.String("last_name").NotEmpty(),
		field.Time("date_of_birth").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("address").Optional().Nillable(),
		field.String("phone_number").Optional().Nillable().MaxLen(20),
		field.String("emergency_contact").Optional().Nillable().MaxLen(100),
		field.String("emergency_contact_phone").Optional().Nillable().MaxLen(20),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE patient -> MANY records (append-only history)
		edge.To("records", Record.Type),
		// MANY patients <-> MANY providers
		edge.From("providers", Provider.Type).Ref("patients"),
	}
}
