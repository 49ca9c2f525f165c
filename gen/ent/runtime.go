// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bryankwang/EMR-Processing/db/ent/schema"
	"github.com/bryankwang/EMR-Processing/gen/ent/patient"
	"github.com/bryankwang/EMR-Processing/gen/ent/provider"
	"github.com/bryankwang/EMR-Processing/gen/ent/record"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[1].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = patientDescFirstName.Validators[0].(func(string) error)
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[2].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = patientDescLastName.Validators[0].(func(string) error)
	// patientDescPhoneNumber is the schema descriptor for phone_number field.
	patientDescPhoneNumber := patientFields[5].Descriptor()
	// patient.PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	patient.PhoneNumberValidator = patientDescPhoneNumber.Validators[0].(func(string) error)
	// patientDescEmergencyContact is the schema descriptor for emergency_contact field.
	patientDescEmergencyContact := patientFields[6].Descriptor()
	// patient.EmergencyContactValidator is a validator for the "emergency_contact" field. It is called by the builders before save.
	patient.EmergencyContactValidator = patientDescEmergencyContact.Validators[0].(func(string) error)
	// patientDescEmergencyContactPhone is the schema descriptor for emergency_contact_phone field.
	patientDescEmergencyContactPhone := patientFields[7].Descriptor()
	// patient.EmergencyContactPhoneValidator is a validator for the "emergency_contact_phone" field. It is called by the builders before save.
	patient.EmergencyContactPhoneValidator = patientDescEmergencyContactPhone.Validators[0].(func(string) error)
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientFields[8].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientFields[9].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientFields[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	providerFields := schema.Provider{}.Fields()
	_ = providerFields
	// providerDescFirstName is the schema descriptor for first_name field.
	providerDescFirstName := providerFields[1].Descriptor()
	// provider.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	provider.FirstNameValidator = providerDescFirstName.Validators[0].(func(string) error)
	// providerDescLastName is the schema descriptor for last_name field.
	providerDescLastName := providerFields[2].Descriptor()
	// provider.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	provider.LastNameValidator = providerDescLastName.Validators[0].(func(string) error)
	// providerDescSpecialty is the schema descriptor for specialty field.
	providerDescSpecialty := providerFields[3].Descriptor()
	// provider.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	provider.SpecialtyValidator = func() func(string) error {
		validators := providerDescSpecialty.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(specialty string) error {
			for _, fn := range fns {
				if err := fn(specialty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// providerDescLicenseNumber is the schema descriptor for license_number field.
	providerDescLicenseNumber := providerFields[4].Descriptor()
	// provider.LicenseNumberValidator is a validator for the "license_number" field. It is called by the builders before save.
	provider.LicenseNumberValidator = func() func(string) error {
		validators := providerDescLicenseNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(license_number string) error {
			for _, fn := range fns {
				if err := fn(license_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// providerDescCreatedAt is the schema descriptor for created_at field.
	providerDescCreatedAt := providerFields[5].Descriptor()
	// provider.DefaultCreatedAt holds the default value on creation for the created_at field.
	provider.DefaultCreatedAt = providerDescCreatedAt.Default.(func() time.Time)
	// providerDescUpdatedAt is the schema descriptor for updated_at field.
	providerDescUpdatedAt := providerFields[6].Descriptor()
	// provider.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	provider.DefaultUpdatedAt = providerDescUpdatedAt.Default.(func() time.Time)
	// provider.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	provider.UpdateDefaultUpdatedAt = providerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// providerDescID is the schema descriptor for id field.
	providerDescID := providerFields[0].Descriptor()
	// provider.DefaultID holds the default value on creation for the id field.
	provider.DefaultID = providerDescID.Default.(func() uuid.UUID)
	recordFields := schema.Record{}.Fields()
	_ = recordFields
	// recordDescSourceFilename is the schema descriptor for source_filename field.
	recordDescSourceFilename := recordFields[3].Descriptor()
	// record.SourceFilenameValidator is a validator for the "source_filename" field. It is called by the builders before save.
	record.SourceFilenameValidator = recordDescSourceFilename.Validators[0].(func(string) error)
	// recordDescSourceFormat is the schema descriptor for source_format field.
	recordDescSourceFormat := recordFields[4].Descriptor()
	// record.SourceFormatValidator is a validator for the "source_format" field. It is called by the builders before save.
	record.SourceFormatValidator = func() func(string) error {
		validators := recordDescSourceFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_format string) error {
			for _, fn := range fns {
				if err := fn(source_format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// recordDescStatus is the schema descriptor for status field.
	recordDescStatus := recordFields[6].Descriptor()
	// record.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	record.StatusValidator = func() func(string) error {
		validators := recordDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// recordDescCreatedAt is the schema descriptor for created_at field.
	recordDescCreatedAt := recordFields[21].Descriptor()
	// record.DefaultCreatedAt holds the default value on creation for the created_at field.
	record.DefaultCreatedAt = recordDescCreatedAt.Default.(func() time.Time)
	// recordDescID is the schema descriptor for id field.
	recordDescID := recordFields[0].Descriptor()
	// record.DefaultID holds the default value on creation for the id field.
	record.DefaultID = recordDescID.Default.(func() uuid.UUID)
}
