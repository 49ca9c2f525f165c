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

	"github.com/bryankwang/EMR-Processing/constants"
	"github.com/bryankwang/EMR-Processing/db/ent/schema/utils"
	"github.com/bryankwang/EMR-Processing/internal/entity"
)

// Record is one processing attempt. Rows are append-only: a record is either
// fully populated with status COMPLETED, or an ERROR audit row carrying only
// the source document and error message.
type Record struct{ ent.Schema }

func (Record) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "records"},
	}
}

func (Record) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("patient_id", uuid.UUID{}),
		field.UUID("provider_id", uuid.UUID{}).Optional().Nillable(),
		field.String("source_filename").NotEmpty(),
		field.String("source_format").NotEmpty().
			Validate(utils.EnumValidator(constants.Formats...)),
		field.Bytes("source_document"),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.RecordStatuses...)),
		field.String("error_message").Optional().Nillable(),
		// structured sections, each independently nullable
		field.JSON("weight", &entity.Measurement{}).Optional(),
		field.JSON("height", &entity.Measurement{}).Optional(),
		field.JSON("bmi", &entity.Measurement{}).Optional(),
		field.JSON("medical_history", &entity.MedicalHistory{}).Optional(),
		field.JSON("family_history", &entity.FamilyHistory{}).Optional(),
		field.JSON("social_history", &entity.SocialHistory{}).Optional(),
		field.JSON("allergies", []entity.Allergy{}).Optional(),
		field.JSON("medications", []entity.Medication{}).Optional(),
		field.JSON("vitals", &entity.Vitals{}).Optional(),
		field.JSON("tests_ordered", []entity.TestOrder{}).Optional(),
		field.JSON("test_results", []entity.TestResult{}).Optional(),
		field.JSON("billing_information", &entity.BillingInformation{}).Optional(),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Record) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY records -> ONE patient (FK: records.patient_id)
		edge.From("patient", Patient.Type).
			Ref("records").
			Field("patient_id").
			Required().
			Unique(),
		// OPTIONAL: MANY records -> ONE provider (FK: records.provider_id)
		edge.From("provider", Provider.Type).
			Ref("records").
			Field("provider_id").
			Unique(),
	}
}

func (Record) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("patient_id", "status"),
	}
}
