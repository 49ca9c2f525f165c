// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "date_of_birth", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "emergency_contact", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "emergency_contact_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
	}
	// ProvidersColumns holds the columns for the "providers" table.
	ProvidersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "specialty", Type: field.TypeString, Size: 100},
		{Name: "license_number", Type: field.TypeString, Size: 50},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProvidersTable holds the schema information for the "providers" table.
	ProvidersTable = &schema.Table{
		Name:       "providers",
		Columns:    ProvidersColumns,
		PrimaryKey: []*schema.Column{ProvidersColumns[0]},
	}
	// RecordsColumns holds the columns for the "records" table.
	RecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_filename", Type: field.TypeString},
		{Name: "source_format", Type: field.TypeString},
		{Name: "source_document", Type: field.TypeBytes},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "weight", Type: field.TypeJSON, Nullable: true},
		{Name: "height", Type: field.TypeJSON, Nullable: true},
		{Name: "bmi", Type: field.TypeJSON, Nullable: true},
		{Name: "medical_history", Type: field.TypeJSON, Nullable: true},
		{Name: "family_history", Type: field.TypeJSON, Nullable: true},
		{Name: "social_history", Type: field.TypeJSON, Nullable: true},
		{Name: "allergies", Type: field.TypeJSON, Nullable: true},
		{Name: "medications", Type: field.TypeJSON, Nullable: true},
		{Name: "vitals", Type: field.TypeJSON, Nullable: true},
		{Name: "tests_ordered", Type: field.TypeJSON, Nullable: true},
		{Name: "test_results", Type: field.TypeJSON, Nullable: true},
		{Name: "billing_information", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID, Nullable: true},
	}
	// RecordsTable holds the schema information for the "records" table.
	RecordsTable = &schema.Table{
		Name:       "records",
		Columns:    RecordsColumns,
		PrimaryKey: []*schema.Column{RecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "records_patients_records",
				Columns:    []*schema.Column{RecordsColumns[20]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "records_providers_records",
				Columns:    []*schema.Column{RecordsColumns[21]},
				RefColumns: []*schema.Column{ProvidersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "record_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RecordsColumns[20], RecordsColumns[19]},
			},
			{
				Name:    "record_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{RecordsColumns[20], RecordsColumns[4]},
			},
		},
	}
	// ProviderPatientsColumns holds the columns for the "provider_patients" table.
	ProviderPatientsColumns = []*schema.Column{
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// ProviderPatientsTable holds the schema information for the "provider_patients" table.
	ProviderPatientsTable = &schema.Table{
		Name:       "provider_patients",
		Columns:    ProviderPatientsColumns,
		PrimaryKey: []*schema.Column{ProviderPatientsColumns[0], ProviderPatientsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "provider_patients_provider_id",
				Columns:    []*schema.Column{ProviderPatientsColumns[0]},
				RefColumns: []*schema.Column{ProvidersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "provider_patients_patient_id",
				Columns:    []*schema.Column{ProviderPatientsColumns[1]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PatientsTable,
		ProvidersTable,
		RecordsTable,
		ProviderPatientsTable,
	}
)

func init() {
	PatientsTable.Annotation = &entsql.Annotation{
		Table: "patients",
	}
	ProvidersTable.Annotation = &entsql.Annotation{
		Table: "providers",
	}
	RecordsTable.ForeignKeys[0].RefTable = PatientsTable
	RecordsTable.ForeignKeys[1].RefTable = ProvidersTable
	RecordsTable.Annotation = &entsql.Annotation{
		Table: "records",
	}
	ProviderPatientsTable.ForeignKeys[0].RefTable = ProvidersTable
	ProviderPatientsTable.ForeignKeys[1].RefTable = PatientsTable
}
