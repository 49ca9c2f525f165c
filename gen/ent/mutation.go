// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bryankwang/EMR-Processing/gen/ent/patient"
	"github.com/bryankwang/EMR-Processing/gen/ent/predicate"
	"github.com/bryankwang/EMR-Processing/gen/ent/provider"
	"github.com/bryankwang/EMR-Processing/gen/ent/record"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePatient  = "Patient"
	TypeProvider = "Provider"
	TypeRecord   = "Record"
)

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	first_name              *string
	last_name               *string
	date_of_birth           *time.Time
	address                 *string
	phone_number            *string
	emergency_contact       *string
	emergency_contact_phone *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	records                 map[uuid.UUID]struct{}
	removedrecords          map[uuid.UUID]struct{}
	clearedrecords          bool
	providers               map[uuid.UUID]struct{}
	removedproviders        map[uuid.UUID]struct{}
	clearedproviders        bool
	done                    bool
	oldValue                func(context.Context) (*Patient, error)
	predicates              []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFirstName sets the "first_name" field.
func (m *PatientMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *PatientMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *PatientMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *PatientMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *PatientMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *PatientMutation) ResetLastName() {
	m.last_name = nil
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *PatientMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *PatientMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDateOfBirth(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *PatientMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
}

// SetAddress sets the "address" field.
func (m *PatientMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *PatientMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *PatientMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[patient.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *PatientMutation) AddressCleared() bool {
	_, ok := m.clearedFields[patient.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *PatientMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, patient.FieldAddress)
}

// SetPhoneNumber sets the "phone_number" field.
func (m *PatientMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *PatientMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPhoneNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *PatientMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[patient.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *PatientMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[patient.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *PatientMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, patient.FieldPhoneNumber)
}

// SetEmergencyContact sets the "emergency_contact" field.
func (m *PatientMutation) SetEmergencyContact(s string) {
	m.emergency_contact = &s
}

// EmergencyContact returns the value of the "emergency_contact" field in the mutation.
func (m *PatientMutation) EmergencyContact() (r string, exists bool) {
	v := m.emergency_contact
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyContact returns the old "emergency_contact" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldEmergencyContact(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyContact: %w", err)
	}
	return oldValue.EmergencyContact, nil
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (m *PatientMutation) ClearEmergencyContact() {
	m.emergency_contact = nil
	m.clearedFields[patient.FieldEmergencyContact] = struct{}{}
}

// EmergencyContactCleared returns if the "emergency_contact" field was cleared in this mutation.
func (m *PatientMutation) EmergencyContactCleared() bool {
	_, ok := m.clearedFields[patient.FieldEmergencyContact]
	return ok
}

// ResetEmergencyContact resets all changes to the "emergency_contact" field.
func (m *PatientMutation) ResetEmergencyContact() {
	m.emergency_contact = nil
	delete(m.clearedFields, patient.FieldEmergencyContact)
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (m *PatientMutation) SetEmergencyContactPhone(s string) {
	m.emergency_contact_phone = &s
}

// EmergencyContactPhone returns the value of the "emergency_contact_phone" field in the mutation.
func (m *PatientMutation) EmergencyContactPhone() (r string, exists bool) {
	v := m.emergency_contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyContactPhone returns the old "emergency_contact_phone" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldEmergencyContactPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyContactPhone: %w", err)
	}
	return oldValue.EmergencyContactPhone, nil
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (m *PatientMutation) ClearEmergencyContactPhone() {
	m.emergency_contact_phone = nil
	m.clearedFields[patient.FieldEmergencyContactPhone] = struct{}{}
}

// EmergencyContactPhoneCleared returns if the "emergency_contact_phone" field was cleared in this mutation.
func (m *PatientMutation) EmergencyContactPhoneCleared() bool {
	_, ok := m.clearedFields[patient.FieldEmergencyContactPhone]
	return ok
}

// ResetEmergencyContactPhone resets all changes to the "emergency_contact_phone" field.
func (m *PatientMutation) ResetEmergencyContactPhone() {
	m.emergency_contact_phone = nil
	delete(m.clearedFields, patient.FieldEmergencyContactPhone)
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRecordIDs adds the "records" edge to the Record entity by ids.
func (m *PatientMutation) AddRecordIDs(ids ...uuid.UUID) {
	if m.records == nil {
		m.records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the Record entity.
func (m *PatientMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the Record entity was cleared.
func (m *PatientMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the Record entity by IDs.
func (m *PatientMutation) RemoveRecordIDs(ids ...uuid.UUID) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the Record entity.
func (m *PatientMutation) RemovedRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *PatientMutation) RecordsIDs() (ids []uuid.UUID) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *PatientMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// AddProviderIDs adds the "providers" edge to the Provider entity by ids.
func (m *PatientMutation) AddProviderIDs(ids ...uuid.UUID) {
	if m.providers == nil {
		m.providers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.providers[ids[i]] = struct{}{}
	}
}

// ClearProviders clears the "providers" edge to the Provider entity.
func (m *PatientMutation) ClearProviders() {
	m.clearedproviders = true
}

// ProvidersCleared reports if the "providers" edge to the Provider entity was cleared.
func (m *PatientMutation) ProvidersCleared() bool {
	return m.clearedproviders
}

// RemoveProviderIDs removes the "providers" edge to the Provider entity by IDs.
func (m *PatientMutation) RemoveProviderIDs(ids ...uuid.UUID) {
	if m.removedproviders == nil {
		m.removedproviders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.providers, ids[i])
		m.removedproviders[ids[i]] = struct{}{}
	}
}

// RemovedProviders returns the removed IDs of the "providers" edge to the Provider entity.
func (m *PatientMutation) RemovedProvidersIDs() (ids []uuid.UUID) {
	for id := range m.removedproviders {
		ids = append(ids, id)
	}
	return
}

// ProvidersIDs returns the "providers" edge IDs in the mutation.
func (m *PatientMutation) ProvidersIDs() (ids []uuid.UUID) {
	for id := range m.providers {
		ids = append(ids, id)
	}
	return
}

// ResetProviders resets all changes to the "providers" edge.
func (m *PatientMutation) ResetProviders() {
	m.providers = nil
	m.clearedproviders = false
	m.removedproviders = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.first_name != nil {
		fields = append(fields, patient.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, patient.FieldLastName)
	}
	if m.date_of_birth != nil {
		fields = append(fields, patient.FieldDateOfBirth)
	}
	if m.address != nil {
		fields = append(fields, patient.FieldAddress)
	}
	if m.phone_number != nil {
		fields = append(fields, patient.FieldPhoneNumber)
	}
	if m.emergency_contact != nil {
		fields = append(fields, patient.FieldEmergencyContact)
	}
	if m.emergency_contact_phone != nil {
		fields = append(fields, patient.FieldEmergencyContactPhone)
	}
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldFirstName:
		return m.FirstName()
	case patient.FieldLastName:
		return m.LastName()
	case patient.FieldDateOfBirth:
		return m.DateOfBirth()
	case patient.FieldAddress:
		return m.Address()
	case patient.FieldPhoneNumber:
		return m.PhoneNumber()
	case patient.FieldEmergencyContact:
		return m.EmergencyContact()
	case patient.FieldEmergencyContactPhone:
		return m.EmergencyContactPhone()
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldFirstName:
		return m.OldFirstName(ctx)
	case patient.FieldLastName:
		return m.OldLastName(ctx)
	case patient.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case patient.FieldAddress:
		return m.OldAddress(ctx)
	case patient.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case patient.FieldEmergencyContact:
		return m.OldEmergencyContact(ctx)
	case patient.FieldEmergencyContactPhone:
		return m.OldEmergencyContactPhone(ctx)
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case patient.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case patient.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case patient.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case patient.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case patient.FieldEmergencyContact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyContact(v)
		return nil
	case patient.FieldEmergencyContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyContactPhone(v)
		return nil
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldAddress) {
		fields = append(fields, patient.FieldAddress)
	}
	if m.FieldCleared(patient.FieldPhoneNumber) {
		fields = append(fields, patient.FieldPhoneNumber)
	}
	if m.FieldCleared(patient.FieldEmergencyContact) {
		fields = append(fields, patient.FieldEmergencyContact)
	}
	if m.FieldCleared(patient.FieldEmergencyContactPhone) {
		fields = append(fields, patient.FieldEmergencyContactPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldAddress:
		m.ClearAddress()
		return nil
	case patient.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	case patient.FieldEmergencyContact:
		m.ClearEmergencyContact()
		return nil
	case patient.FieldEmergencyContactPhone:
		m.ClearEmergencyContactPhone()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldFirstName:
		m.ResetFirstName()
		return nil
	case patient.FieldLastName:
		m.ResetLastName()
		return nil
	case patient.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case patient.FieldAddress:
		m.ResetAddress()
		return nil
	case patient.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case patient.FieldEmergencyContact:
		m.ResetEmergencyContact()
		return nil
	case patient.FieldEmergencyContactPhone:
		m.ResetEmergencyContactPhone()
		return nil
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.records != nil {
		edges = append(edges, patient.EdgeRecords)
	}
	if m.providers != nil {
		edges = append(edges, patient.EdgeProviders)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeProviders:
		ids := make([]ent.Value, 0, len(m.providers))
		for id := range m.providers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrecords != nil {
		edges = append(edges, patient.EdgeRecords)
	}
	if m.removedproviders != nil {
		edges = append(edges, patient.EdgeProviders)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeProviders:
		ids := make([]ent.Value, 0, len(m.removedproviders))
		for id := range m.removedproviders {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrecords {
		edges = append(edges, patient.EdgeRecords)
	}
	if m.clearedproviders {
		edges = append(edges, patient.EdgeProviders)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgeRecords:
		return m.clearedrecords
	case patient.EdgeProviders:
		return m.clearedproviders
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgeRecords:
		m.ResetRecords()
		return nil
	case patient.EdgeProviders:
		m.ResetProviders()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// ProviderMutation represents an operation that mutates the Provider nodes in the graph.
type ProviderMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	first_name      *string
	last_name       *string
	specialty       *string
	license_number  *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	patients        map[uuid.UUID]struct{}
	removedpatients map[uuid.UUID]struct{}
	clearedpatients bool
	records         map[uuid.UUID]struct{}
	removedrecords  map[uuid.UUID]struct{}
	clearedrecords  bool
	done            bool
	oldValue        func(context.Context) (*Provider, error)
	predicates      []predicate.Provider
}

var _ ent.Mutation = (*ProviderMutation)(nil)

// providerOption allows management of the mutation configuration using functional options.
type providerOption func(*ProviderMutation)

// newProviderMutation creates new mutation for the Provider entity.
func newProviderMutation(c config, op Op, opts ...providerOption) *ProviderMutation {
	m := &ProviderMutation{
		config:        c,
		op:            op,
		typ:           TypeProvider,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProviderID sets the ID field of the mutation.
func withProviderID(id uuid.UUID) providerOption {
	return func(m *ProviderMutation) {
		var (
			err   error
			once  sync.Once
			value *Provider
		)
		m.oldValue = func(ctx context.Context) (*Provider, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Provider.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProvider sets the old Provider of the mutation.
func withProvider(node *Provider) providerOption {
	return func(m *ProviderMutation) {
		m.oldValue = func(context.Context) (*Provider, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProviderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProviderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Provider entities.
func (m *ProviderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProviderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProviderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Provider.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFirstName sets the "first_name" field.
func (m *ProviderMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *ProviderMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Provider entity.
// If the Provider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *ProviderMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *ProviderMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *ProviderMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Provider entity.
// If the Provider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *ProviderMutation) ResetLastName() {
	m.last_name = nil
}

// SetSpecialty sets the "specialty" field.
func (m *ProviderMutation) SetSpecialty(s string) {
	m.specialty = &s
}

// Specialty returns the value of the "specialty" field in the mutation.
func (m *ProviderMutation) Specialty() (r string, exists bool) {
	v := m.specialty
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialty returns the old "specialty" field's value of the Provider entity.
// If the Provider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderMutation) OldSpecialty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialty: %w", err)
	}
	return oldValue.Specialty, nil
}

// ResetSpecialty resets all changes to the "specialty" field.
func (m *ProviderMutation) ResetSpecialty() {
	m.specialty = nil
}

// SetLicenseNumber sets the "license_number" field.
func (m *ProviderMutation) SetLicenseNumber(s string) {
	m.license_number = &s
}

// LicenseNumber returns the value of the "license_number" field in the mutation.
func (m *ProviderMutation) LicenseNumber() (r string, exists bool) {
	v := m.license_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLicenseNumber returns the old "license_number" field's value of the Provider entity.
// If the Provider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderMutation) OldLicenseNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLicenseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLicenseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLicenseNumber: %w", err)
	}
	return oldValue.LicenseNumber, nil
}

// ResetLicenseNumber resets all changes to the "license_number" field.
func (m *ProviderMutation) ResetLicenseNumber() {
	m.license_number = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProviderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProviderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Provider entity.
// If the Provider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProviderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProviderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProviderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Provider entity.
// If the Provider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProviderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPatientIDs adds the "patients" edge to the Patient entity by ids.
func (m *ProviderMutation) AddPatientIDs(ids ...uuid.UUID) {
	if m.patients == nil {
		m.patients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.patients[ids[i]] = struct{}{}
	}
}

// ClearPatients clears the "patients" edge to the Patient entity.
func (m *ProviderMutation) ClearPatients() {
	m.clearedpatients = true
}

// PatientsCleared reports if the "patients" edge to the Patient entity was cleared.
func (m *ProviderMutation) PatientsCleared() bool {
	return m.clearedpatients
}

// RemovePatientIDs removes the "patients" edge to the Patient entity by IDs.
func (m *ProviderMutation) RemovePatientIDs(ids ...uuid.UUID) {
	if m.removedpatients == nil {
		m.removedpatients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.patients, ids[i])
		m.removedpatients[ids[i]] = struct{}{}
	}
}

// RemovedPatients returns the removed IDs of the "patients" edge to the Patient entity.
func (m *ProviderMutation) RemovedPatientsIDs() (ids []uuid.UUID) {
	for id := range m.removedpatients {
		ids = append(ids, id)
	}
	return
}

// PatientsIDs returns the "patients" edge IDs in the mutation.
func (m *ProviderMutation) PatientsIDs() (ids []uuid.UUID) {
	for id := range m.patients {
		ids = append(ids, id)
	}
	return
}

// ResetPatients resets all changes to the "patients" edge.
func (m *ProviderMutation) ResetPatients() {
	m.patients = nil
	m.clearedpatients = false
	m.removedpatients = nil
}

// AddRecordIDs adds the "records" edge to the Record entity by ids.
func (m *ProviderMutation) AddRecordIDs(ids ...uuid.UUID) {
	if m.records == nil {
		m.records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the Record entity.
func (m *ProviderMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the Record entity was cleared.
func (m *ProviderMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the Record entity by IDs.
func (m *ProviderMutation) RemoveRecordIDs(ids ...uuid.UUID) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the Record entity.
func (m *ProviderMutation) RemovedRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *ProviderMutation) RecordsIDs() (ids []uuid.UUID) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *ProviderMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// Where appends a list predicates to the ProviderMutation builder.
func (m *ProviderMutation) Where(ps ...predicate.Provider) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProviderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProviderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Provider, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProviderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProviderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Provider).
func (m *ProviderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProviderMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.first_name != nil {
		fields = append(fields, provider.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, provider.FieldLastName)
	}
	if m.specialty != nil {
		fields = append(fields, provider.FieldSpecialty)
	}
	if m.license_number != nil {
		fields = append(fields, provider.FieldLicenseNumber)
	}
	if m.created_at != nil {
		fields = append(fields, provider.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, provider.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProviderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case provider.FieldFirstName:
		return m.FirstName()
	case provider.FieldLastName:
		return m.LastName()
	case provider.FieldSpecialty:
		return m.Specialty()
	case provider.FieldLicenseNumber:
		return m.LicenseNumber()
	case provider.FieldCreatedAt:
		return m.CreatedAt()
	case provider.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProviderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case provider.FieldFirstName:
		return m.OldFirstName(ctx)
	case provider.FieldLastName:
		return m.OldLastName(ctx)
	case provider.FieldSpecialty:
		return m.OldSpecialty(ctx)
	case provider.FieldLicenseNumber:
		return m.OldLicenseNumber(ctx)
	case provider.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case provider.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Provider field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case provider.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case provider.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case provider.FieldSpecialty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialty(v)
		return nil
	case provider.FieldLicenseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLicenseNumber(v)
		return nil
	case provider.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case provider.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Provider field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProviderMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProviderMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Provider numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProviderMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProviderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProviderMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Provider nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProviderMutation) ResetField(name string) error {
	switch name {
	case provider.FieldFirstName:
		m.ResetFirstName()
		return nil
	case provider.FieldLastName:
		m.ResetLastName()
		return nil
	case provider.FieldSpecialty:
		m.ResetSpecialty()
		return nil
	case provider.FieldLicenseNumber:
		m.ResetLicenseNumber()
		return nil
	case provider.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case provider.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Provider field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProviderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patients != nil {
		edges = append(edges, provider.EdgePatients)
	}
	if m.records != nil {
		edges = append(edges, provider.EdgeRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProviderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case provider.EdgePatients:
		ids := make([]ent.Value, 0, len(m.patients))
		for id := range m.patients {
			ids = append(ids, id)
		}
		return ids
	case provider.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProviderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpatients != nil {
		edges = append(edges, provider.EdgePatients)
	}
	if m.removedrecords != nil {
		edges = append(edges, provider.EdgeRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProviderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case provider.EdgePatients:
		ids := make([]ent.Value, 0, len(m.removedpatients))
		for id := range m.removedpatients {
			ids = append(ids, id)
		}
		return ids
	case provider.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProviderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatients {
		edges = append(edges, provider.EdgePatients)
	}
	if m.clearedrecords {
		edges = append(edges, provider.EdgeRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProviderMutation) EdgeCleared(name string) bool {
	switch name {
	case provider.EdgePatients:
		return m.clearedpatients
	case provider.EdgeRecords:
		return m.clearedrecords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProviderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Provider unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProviderMutation) ResetEdge(name string) error {
	switch name {
	case provider.EdgePatients:
		m.ResetPatients()
		return nil
	case provider.EdgeRecords:
		m.ResetRecords()
		return nil
	}
	return fmt.Errorf("unknown Provider edge %s", name)
}

// RecordMutation represents an operation that mutates the Record nodes in the graph.
type RecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	source_filename     *string
	source_format       *string
	source_document     *[]byte
	status              *string
	error_message       *string
	weight              **entity.Measurement
	height              **entity.Measurement
	bmi                 **entity.Measurement
	medical_history     **entity.MedicalHistory
	family_history      **entity.FamilyHistory
	social_history      **entity.SocialHistory
	allergies           *[]entity.Allergy
	appendallergies     []entity.Allergy
	medications         *[]entity.Medication
	appendmedications   []entity.Medication
	vitals              **entity.Vitals
	tests_ordered       *[]entity.TestOrder
	appendtests_ordered []entity.TestOrder
	test_results        *[]entity.TestResult
	appendtest_results  []entity.TestResult
	billing_information **entity.BillingInformation
	notes               *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	patient             *uuid.UUID
	clearedpatient      bool
	provider            *uuid.UUID
	clearedprovider     bool
	done                bool
	oldValue            func(context.Context) (*Record, error)
	predicates          []predicate.Record
}

var _ ent.Mutation = (*RecordMutation)(nil)

// recordOption allows management of the mutation configuration using functional options.
type recordOption func(*RecordMutation)

// newRecordMutation creates new mutation for the Record entity.
func newRecordMutation(c config, op Op, opts ...recordOption) *RecordMutation {
	m := &RecordMutation{
		config:        c,
		op:            op,
		typ:           TypeRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecordID sets the ID field of the mutation.
func withRecordID(id uuid.UUID) recordOption {
	return func(m *RecordMutation) {
		var (
			err   error
			once  sync.Once
			value *Record
		)
		m.oldValue = func(ctx context.Context) (*Record, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Record.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecord sets the old Record of the mutation.
func withRecord(node *Record) recordOption {
	return func(m *RecordMutation) {
		m.oldValue = func(context.Context) (*Record, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Record entities.
func (m *RecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Record.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatientID sets the "patient_id" field.
func (m *RecordMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *RecordMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *RecordMutation) ResetPatientID() {
	m.patient = nil
}

// SetProviderID sets the "provider_id" field.
func (m *RecordMutation) SetProviderID(u uuid.UUID) {
	m.provider = &u
}

// ProviderID returns the value of the "provider_id" field in the mutation.
func (m *RecordMutation) ProviderID() (r uuid.UUID, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderID returns the old "provider_id" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldProviderID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderID: %w", err)
	}
	return oldValue.ProviderID, nil
}

// ClearProviderID clears the value of the "provider_id" field.
func (m *RecordMutation) ClearProviderID() {
	m.provider = nil
	m.clearedFields[record.FieldProviderID] = struct{}{}
}

// ProviderIDCleared returns if the "provider_id" field was cleared in this mutation.
func (m *RecordMutation) ProviderIDCleared() bool {
	_, ok := m.clearedFields[record.FieldProviderID]
	return ok
}

// ResetProviderID resets all changes to the "provider_id" field.
func (m *RecordMutation) ResetProviderID() {
	m.provider = nil
	delete(m.clearedFields, record.FieldProviderID)
}

// SetSourceFilename sets the "source_filename" field.
func (m *RecordMutation) SetSourceFilename(s string) {
	m.source_filename = &s
}

// SourceFilename returns the value of the "source_filename" field in the mutation.
func (m *RecordMutation) SourceFilename() (r string, exists bool) {
	v := m.source_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFilename returns the old "source_filename" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldSourceFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFilename: %w", err)
	}
	return oldValue.SourceFilename, nil
}

// ResetSourceFilename resets all changes to the "source_filename" field.
func (m *RecordMutation) ResetSourceFilename() {
	m.source_filename = nil
}

// SetSourceFormat sets the "source_format" field.
func (m *RecordMutation) SetSourceFormat(s string) {
	m.source_format = &s
}

// SourceFormat returns the value of the "source_format" field in the mutation.
func (m *RecordMutation) SourceFormat() (r string, exists bool) {
	v := m.source_format
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFormat returns the old "source_format" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldSourceFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFormat: %w", err)
	}
	return oldValue.SourceFormat, nil
}

// ResetSourceFormat resets all changes to the "source_format" field.
func (m *RecordMutation) ResetSourceFormat() {
	m.source_format = nil
}

// SetSourceDocument sets the "source_document" field.
func (m *RecordMutation) SetSourceDocument(b []byte) {
	m.source_document = &b
}

// SourceDocument returns the value of the "source_document" field in the mutation.
func (m *RecordMutation) SourceDocument() (r []byte, exists bool) {
	v := m.source_document
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDocument returns the old "source_document" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldSourceDocument(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDocument: %w", err)
	}
	return oldValue.SourceDocument, nil
}

// ResetSourceDocument resets all changes to the "source_document" field.
func (m *RecordMutation) ResetSourceDocument() {
	m.source_document = nil
}

// SetStatus sets the "status" field.
func (m *RecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RecordMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *RecordMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RecordMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RecordMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[record.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RecordMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[record.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RecordMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, record.FieldErrorMessage)
}

// SetWeight sets the "weight" field.
func (m *RecordMutation) SetWeight(e *entity.Measurement) {
	m.weight = &e
}

// Weight returns the value of the "weight" field in the mutation.
func (m *RecordMutation) Weight() (r *entity.Measurement, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldWeight(ctx context.Context) (v *entity.Measurement, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// ClearWeight clears the value of the "weight" field.
func (m *RecordMutation) ClearWeight() {
	m.weight = nil
	m.clearedFields[record.FieldWeight] = struct{}{}
}

// WeightCleared returns if the "weight" field was cleared in this mutation.
func (m *RecordMutation) WeightCleared() bool {
	_, ok := m.clearedFields[record.FieldWeight]
	return ok
}

// ResetWeight resets all changes to the "weight" field.
func (m *RecordMutation) ResetWeight() {
	m.weight = nil
	delete(m.clearedFields, record.FieldWeight)
}

// SetHeight sets the "height" field.
func (m *RecordMutation) SetHeight(e *entity.Measurement) {
	m.height = &e
}

// Height returns the value of the "height" field in the mutation.
func (m *RecordMutation) Height() (r *entity.Measurement, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldHeight(ctx context.Context) (v *entity.Measurement, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// ClearHeight clears the value of the "height" field.
func (m *RecordMutation) ClearHeight() {
	m.height = nil
	m.clearedFields[record.FieldHeight] = struct{}{}
}

// HeightCleared returns if the "height" field was cleared in this mutation.
func (m *RecordMutation) HeightCleared() bool {
	_, ok := m.clearedFields[record.FieldHeight]
	return ok
}

// ResetHeight resets all changes to the "height" field.
func (m *RecordMutation) ResetHeight() {
	m.height = nil
	delete(m.clearedFields, record.FieldHeight)
}

// SetBmi sets the "bmi" field.
func (m *RecordMutation) SetBmi(e *entity.Measurement) {
	m.bmi = &e
}

// Bmi returns the value of the "bmi" field in the mutation.
func (m *RecordMutation) Bmi() (r *entity.Measurement, exists bool) {
	v := m.bmi
	if v == nil {
		return
	}
	return *v, true
}

// OldBmi returns the old "bmi" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldBmi(ctx context.Context) (v *entity.Measurement, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBmi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBmi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBmi: %w", err)
	}
	return oldValue.Bmi, nil
}

// ClearBmi clears the value of the "bmi" field.
func (m *RecordMutation) ClearBmi() {
	m.bmi = nil
	m.clearedFields[record.FieldBmi] = struct{}{}
}

// BmiCleared returns if the "bmi" field was cleared in this mutation.
func (m *RecordMutation) BmiCleared() bool {
	_, ok := m.clearedFields[record.FieldBmi]
	return ok
}

// ResetBmi resets all changes to the "bmi" field.
func (m *RecordMutation) ResetBmi() {
	m.bmi = nil
	delete(m.clearedFields, record.FieldBmi)
}

// SetMedicalHistory sets the "medical_history" field.
func (m *RecordMutation) SetMedicalHistory(eh *entity.MedicalHistory) {
	m.medical_history = &eh
}

// MedicalHistory returns the value of the "medical_history" field in the mutation.
func (m *RecordMutation) MedicalHistory() (r *entity.MedicalHistory, exists bool) {
	v := m.medical_history
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicalHistory returns the old "medical_history" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldMedicalHistory(ctx context.Context) (v *entity.MedicalHistory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicalHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicalHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicalHistory: %w", err)
	}
	return oldValue.MedicalHistory, nil
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (m *RecordMutation) ClearMedicalHistory() {
	m.medical_history = nil
	m.clearedFields[record.FieldMedicalHistory] = struct{}{}
}

// MedicalHistoryCleared returns if the "medical_history" field was cleared in this mutation.
func (m *RecordMutation) MedicalHistoryCleared() bool {
	_, ok := m.clearedFields[record.FieldMedicalHistory]
	return ok
}

// ResetMedicalHistory resets all changes to the "medical_history" field.
func (m *RecordMutation) ResetMedicalHistory() {
	m.medical_history = nil
	delete(m.clearedFields, record.FieldMedicalHistory)
}

// SetFamilyHistory sets the "family_history" field.
func (m *RecordMutation) SetFamilyHistory(eh *entity.FamilyHistory) {
	m.family_history = &eh
}

// FamilyHistory returns the value of the "family_history" field in the mutation.
func (m *RecordMutation) FamilyHistory() (r *entity.FamilyHistory, exists bool) {
	v := m.family_history
	if v == nil {
		return
	}
	return *v, true
}

// OldFamilyHistory returns the old "family_history" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldFamilyHistory(ctx context.Context) (v *entity.FamilyHistory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFamilyHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFamilyHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFamilyHistory: %w", err)
	}
	return oldValue.FamilyHistory, nil
}

// ClearFamilyHistory clears the value of the "family_history" field.
func (m *RecordMutation) ClearFamilyHistory() {
	m.family_history = nil
	m.clearedFields[record.FieldFamilyHistory] = struct{}{}
}

// FamilyHistoryCleared returns if the "family_history" field was cleared in this mutation.
func (m *RecordMutation) FamilyHistoryCleared() bool {
	_, ok := m.clearedFields[record.FieldFamilyHistory]
	return ok
}

// ResetFamilyHistory resets all changes to the "family_history" field.
func (m *RecordMutation) ResetFamilyHistory() {
	m.family_history = nil
	delete(m.clearedFields, record.FieldFamilyHistory)
}

// SetSocialHistory sets the "social_history" field.
func (m *RecordMutation) SetSocialHistory(eh *entity.SocialHistory) {
	m.social_history = &eh
}

// SocialHistory returns the value of the "social_history" field in the mutation.
func (m *RecordMutation) SocialHistory() (r *entity.SocialHistory, exists bool) {
	v := m.social_history
	if v == nil {
		return
	}
	return *v, true
}

// OldSocialHistory returns the old "social_history" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldSocialHistory(ctx context.Context) (v *entity.SocialHistory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSocialHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSocialHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSocialHistory: %w", err)
	}
	return oldValue.SocialHistory, nil
}

// ClearSocialHistory clears the value of the "social_history" field.
func (m *RecordMutation) ClearSocialHistory() {
	m.social_history = nil
	m.clearedFields[record.FieldSocialHistory] = struct{}{}
}

// SocialHistoryCleared returns if the "social_history" field was cleared in this mutation.
func (m *RecordMutation) SocialHistoryCleared() bool {
	_, ok := m.clearedFields[record.FieldSocialHistory]
	return ok
}

// ResetSocialHistory resets all changes to the "social_history" field.
func (m *RecordMutation) ResetSocialHistory() {
	m.social_history = nil
	delete(m.clearedFields, record.FieldSocialHistory)
}

// SetAllergies sets the "allergies" field.
func (m *RecordMutation) SetAllergies(e []entity.Allergy) {
	m.allergies = &e
	m.appendallergies = nil
}

// Allergies returns the value of the "allergies" field in the mutation.
func (m *RecordMutation) Allergies() (r []entity.Allergy, exists bool) {
	v := m.allergies
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergies returns the old "allergies" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldAllergies(ctx context.Context) (v []entity.Allergy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergies: %w", err)
	}
	return oldValue.Allergies, nil
}

// AppendAllergies adds e to the "allergies" field.
func (m *RecordMutation) AppendAllergies(e []entity.Allergy) {
	m.appendallergies = append(m.appendallergies, e...)
}

// AppendedAllergies returns the list of values that were appended to the "allergies" field in this mutation.
func (m *RecordMutation) AppendedAllergies() ([]entity.Allergy, bool) {
	if len(m.appendallergies) == 0 {
		return nil, false
	}
	return m.appendallergies, true
}

// ClearAllergies clears the value of the "allergies" field.
func (m *RecordMutation) ClearAllergies() {
	m.allergies = nil
	m.appendallergies = nil
	m.clearedFields[record.FieldAllergies] = struct{}{}
}

// AllergiesCleared returns if the "allergies" field was cleared in this mutation.
func (m *RecordMutation) AllergiesCleared() bool {
	_, ok := m.clearedFields[record.FieldAllergies]
	return ok
}

// ResetAllergies resets all changes to the "allergies" field.
func (m *RecordMutation) ResetAllergies() {
	m.allergies = nil
	m.appendallergies = nil
	delete(m.clearedFields, record.FieldAllergies)
}

// SetMedications sets the "medications" field.
func (m *RecordMutation) SetMedications(e []entity.Medication) {
	m.medications = &e
	m.appendmedications = nil
}

// Medications returns the value of the "medications" field in the mutation.
func (m *RecordMutation) Medications() (r []entity.Medication, exists bool) {
	v := m.medications
	if v == nil {
		return
	}
	return *v, true
}

// OldMedications returns the old "medications" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldMedications(ctx context.Context) (v []entity.Medication, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedications: %w", err)
	}
	return oldValue.Medications, nil
}

// AppendMedications adds e to the "medications" field.
func (m *RecordMutation) AppendMedications(e []entity.Medication) {
	m.appendmedications = append(m.appendmedications, e...)
}

// AppendedMedications returns the list of values that were appended to the "medications" field in this mutation.
func (m *RecordMutation) AppendedMedications() ([]entity.Medication, bool) {
	if len(m.appendmedications) == 0 {
		return nil, false
	}
	return m.appendmedications, true
}

// ClearMedications clears the value of the "medications" field.
func (m *RecordMutation) ClearMedications() {
	m.medications = nil
	m.appendmedications = nil
	m.clearedFields[record.FieldMedications] = struct{}{}
}

// MedicationsCleared returns if the "medications" field was cleared in this mutation.
func (m *RecordMutation) MedicationsCleared() bool {
	_, ok := m.clearedFields[record.FieldMedications]
	return ok
}

// ResetMedications resets all changes to the "medications" field.
func (m *RecordMutation) ResetMedications() {
	m.medications = nil
	m.appendmedications = nil
	delete(m.clearedFields, record.FieldMedications)
}

// SetVitals sets the "vitals" field.
func (m *RecordMutation) SetVitals(e *entity.Vitals) {
	m.vitals = &e
}

// Vitals returns the value of the "vitals" field in the mutation.
func (m *RecordMutation) Vitals() (r *entity.Vitals, exists bool) {
	v := m.vitals
	if v == nil {
		return
	}
	return *v, true
}

// OldVitals returns the old "vitals" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldVitals(ctx context.Context) (v *entity.Vitals, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVitals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVitals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVitals: %w", err)
	}
	return oldValue.Vitals, nil
}

// ClearVitals clears the value of the "vitals" field.
func (m *RecordMutation) ClearVitals() {
	m.vitals = nil
	m.clearedFields[record.FieldVitals] = struct{}{}
}

// VitalsCleared returns if the "vitals" field was cleared in this mutation.
func (m *RecordMutation) VitalsCleared() bool {
	_, ok := m.clearedFields[record.FieldVitals]
	return ok
}

// ResetVitals resets all changes to the "vitals" field.
func (m *RecordMutation) ResetVitals() {
	m.vitals = nil
	delete(m.clearedFields, record.FieldVitals)
}

// SetTestsOrdered sets the "tests_ordered" field.
func (m *RecordMutation) SetTestsOrdered(eo []entity.TestOrder) {
	m.tests_ordered = &eo
	m.appendtests_ordered = nil
}

// TestsOrdered returns the value of the "tests_ordered" field in the mutation.
func (m *RecordMutation) TestsOrdered() (r []entity.TestOrder, exists bool) {
	v := m.tests_ordered
	if v == nil {
		return
	}
	return *v, true
}

// OldTestsOrdered returns the old "tests_ordered" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldTestsOrdered(ctx context.Context) (v []entity.TestOrder, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestsOrdered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestsOrdered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestsOrdered: %w", err)
	}
	return oldValue.TestsOrdered, nil
}

// AppendTestsOrdered adds eo to the "tests_ordered" field.
func (m *RecordMutation) AppendTestsOrdered(eo []entity.TestOrder) {
	m.appendtests_ordered = append(m.appendtests_ordered, eo...)
}

// AppendedTestsOrdered returns the list of values that were appended to the "tests_ordered" field in this mutation.
func (m *RecordMutation) AppendedTestsOrdered() ([]entity.TestOrder, bool) {
	if len(m.appendtests_ordered) == 0 {
		return nil, false
	}
	return m.appendtests_ordered, true
}

// ClearTestsOrdered clears the value of the "tests_ordered" field.
func (m *RecordMutation) ClearTestsOrdered() {
	m.tests_ordered = nil
	m.appendtests_ordered = nil
	m.clearedFields[record.FieldTestsOrdered] = struct{}{}
}

// TestsOrderedCleared returns if the "tests_ordered" field was cleared in this mutation.
func (m *RecordMutation) TestsOrderedCleared() bool {
	_, ok := m.clearedFields[record.FieldTestsOrdered]
	return ok
}

// ResetTestsOrdered resets all changes to the "tests_ordered" field.
func (m *RecordMutation) ResetTestsOrdered() {
	m.tests_ordered = nil
	m.appendtests_ordered = nil
	delete(m.clearedFields, record.FieldTestsOrdered)
}

// SetTestResults sets the "test_results" field.
func (m *RecordMutation) SetTestResults(er []entity.TestResult) {
	m.test_results = &er
	m.appendtest_results = nil
}

// TestResults returns the value of the "test_results" field in the mutation.
func (m *RecordMutation) TestResults() (r []entity.TestResult, exists bool) {
	v := m.test_results
	if v == nil {
		return
	}
	return *v, true
}

// OldTestResults returns the old "test_results" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldTestResults(ctx context.Context) (v []entity.TestResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestResults: %w", err)
	}
	return oldValue.TestResults, nil
}

// AppendTestResults adds er to the "test_results" field.
func (m *RecordMutation) AppendTestResults(er []entity.TestResult) {
	m.appendtest_results = append(m.appendtest_results, er...)
}

// AppendedTestResults returns the list of values that were appended to the "test_results" field in this mutation.
func (m *RecordMutation) AppendedTestResults() ([]entity.TestResult, bool) {
	if len(m.appendtest_results) == 0 {
		return nil, false
	}
	return m.appendtest_results, true
}

// ClearTestResults clears the value of the "test_results" field.
func (m *RecordMutation) ClearTestResults() {
	m.test_results = nil
	m.appendtest_results = nil
	m.clearedFields[record.FieldTestResults] = struct{}{}
}

// TestResultsCleared returns if the "test_results" field was cleared in this mutation.
func (m *RecordMutation) TestResultsCleared() bool {
	_, ok := m.clearedFields[record.FieldTestResults]
	return ok
}

// ResetTestResults resets all changes to the "test_results" field.
func (m *RecordMutation) ResetTestResults() {
	m.test_results = nil
	m.appendtest_results = nil
	delete(m.clearedFields, record.FieldTestResults)
}

// SetBillingInformation sets the "billing_information" field.
func (m *RecordMutation) SetBillingInformation(ei *entity.BillingInformation) {
	m.billing_information = &ei
}

// BillingInformation returns the value of the "billing_information" field in the mutation.
func (m *RecordMutation) BillingInformation() (r *entity.BillingInformation, exists bool) {
	v := m.billing_information
	if v == nil {
		return
	}
	return *v, true
}

// OldBillingInformation returns the old "billing_information" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldBillingInformation(ctx context.Context) (v *entity.BillingInformation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillingInformation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillingInformation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillingInformation: %w", err)
	}
	return oldValue.BillingInformation, nil
}

// ClearBillingInformation clears the value of the "billing_information" field.
func (m *RecordMutation) ClearBillingInformation() {
	m.billing_information = nil
	m.clearedFields[record.FieldBillingInformation] = struct{}{}
}

// BillingInformationCleared returns if the "billing_information" field was cleared in this mutation.
func (m *RecordMutation) BillingInformationCleared() bool {
	_, ok := m.clearedFields[record.FieldBillingInformation]
	return ok
}

// ResetBillingInformation resets all changes to the "billing_information" field.
func (m *RecordMutation) ResetBillingInformation() {
	m.billing_information = nil
	delete(m.clearedFields, record.FieldBillingInformation)
}

// SetNotes sets the "notes" field.
func (m *RecordMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *RecordMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *RecordMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[record.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *RecordMutation) NotesCleared() bool {
	_, ok := m.clearedFields[record.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *RecordMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, record.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *RecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Record entity.
// If the Record object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *RecordMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[record.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *RecordMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *RecordMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *RecordMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearProvider clears the "provider" edge to the Provider entity.
func (m *RecordMutation) ClearProvider() {
	m.clearedprovider = true
	m.clearedFields[record.FieldProviderID] = struct{}{}
}

// ProviderCleared reports if the "provider" edge to the Provider entity was cleared.
func (m *RecordMutation) ProviderCleared() bool {
	return m.ProviderIDCleared() || m.clearedprovider
}

// ProviderIDs returns the "provider" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProviderID instead. It exists only for internal usage by the builders.
func (m *RecordMutation) ProviderIDs() (ids []uuid.UUID) {
	if id := m.provider; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProvider resets all changes to the "provider" edge.
func (m *RecordMutation) ResetProvider() {
	m.provider = nil
	m.clearedprovider = false
}

// Where appends a list predicates to the RecordMutation builder.
func (m *RecordMutation) Where(ps ...predicate.Record) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Record, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Record).
func (m *RecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecordMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.patient != nil {
		fields = append(fields, record.FieldPatientID)
	}
	if m.provider != nil {
		fields = append(fields, record.FieldProviderID)
	}
	if m.source_filename != nil {
		fields = append(fields, record.FieldSourceFilename)
	}
	if m.source_format != nil {
		fields = append(fields, record.FieldSourceFormat)
	}
	if m.source_document != nil {
		fields = append(fields, record.FieldSourceDocument)
	}
	if m.status != nil {
		fields = append(fields, record.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, record.FieldErrorMessage)
	}
	if m.weight != nil {
		fields = append(fields, record.FieldWeight)
	}
	if m.height != nil {
		fields = append(fields, record.FieldHeight)
	}
	if m.bmi != nil {
		fields = append(fields, record.FieldBmi)
	}
	if m.medical_history != nil {
		fields = append(fields, record.FieldMedicalHistory)
	}
	if m.family_history != nil {
		fields = append(fields, record.FieldFamilyHistory)
	}
	if m.social_history != nil {
		fields = append(fields, record.FieldSocialHistory)
	}
	if m.allergies != nil {
		fields = append(fields, record.FieldAllergies)
	}
	if m.medications != nil {
		fields = append(fields, record.FieldMedications)
	}
	if m.vitals != nil {
		fields = append(fields, record.FieldVitals)
	}
	if m.tests_ordered != nil {
		fields = append(fields, record.FieldTestsOrdered)
	}
	if m.test_results != nil {
		fields = append(fields, record.FieldTestResults)
	}
	if m.billing_information != nil {
		fields = append(fields, record.FieldBillingInformation)
	}
	if m.notes != nil {
		fields = append(fields, record.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, record.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case record.FieldPatientID:
		return m.PatientID()
	case record.FieldProviderID:
		return m.ProviderID()
	case record.FieldSourceFilename:
		return m.SourceFilename()
	case record.FieldSourceFormat:
		return m.SourceFormat()
	case record.FieldSourceDocument:
		return m.SourceDocument()
	case record.FieldStatus:
		return m.Status()
	case record.FieldErrorMessage:
		return m.ErrorMessage()
	case record.FieldWeight:
		return m.Weight()
	case record.FieldHeight:
		return m.Height()
	case record.FieldBmi:
		return m.Bmi()
	case record.FieldMedicalHistory:
		return m.MedicalHistory()
	case record.FieldFamilyHistory:
		return m.FamilyHistory()
	case record.FieldSocialHistory:
		return m.SocialHistory()
	case record.FieldAllergies:
		return m.Allergies()
	case record.FieldMedications:
		return m.Medications()
	case record.FieldVitals:
		return m.Vitals()
	case record.FieldTestsOrdered:
		return m.TestsOrdered()
	case record.FieldTestResults:
		return m.TestResults()
	case record.FieldBillingInformation:
		return m.BillingInformation()
	case record.FieldNotes:
		return m.Notes()
	case record.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case record.FieldPatientID:
		return m.OldPatientID(ctx)
	case record.FieldProviderID:
		return m.OldProviderID(ctx)
	case record.FieldSourceFilename:
		return m.OldSourceFilename(ctx)
	case record.FieldSourceFormat:
		return m.OldSourceFormat(ctx)
	case record.FieldSourceDocument:
		return m.OldSourceDocument(ctx)
	case record.FieldStatus:
		return m.OldStatus(ctx)
	case record.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case record.FieldWeight:
		return m.OldWeight(ctx)
	case record.FieldHeight:
		return m.OldHeight(ctx)
	case record.FieldBmi:
		return m.OldBmi(ctx)
	case record.FieldMedicalHistory:
		return m.OldMedicalHistory(ctx)
	case record.FieldFamilyHistory:
		return m.OldFamilyHistory(ctx)
	case record.FieldSocialHistory:
		return m.OldSocialHistory(ctx)
	case record.FieldAllergies:
		return m.OldAllergies(ctx)
	case record.FieldMedications:
		return m.OldMedications(ctx)
	case record.FieldVitals:
		return m.OldVitals(ctx)
	case record.FieldTestsOrdered:
		return m.OldTestsOrdered(ctx)
	case record.FieldTestResults:
		return m.OldTestResults(ctx)
	case record.FieldBillingInformation:
		return m.OldBillingInformation(ctx)
	case record.FieldNotes:
		return m.OldNotes(ctx)
	case record.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Record field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case record.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case record.FieldProviderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderID(v)
		return nil
	case record.FieldSourceFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFilename(v)
		return nil
	case record.FieldSourceFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFormat(v)
		return nil
	case record.FieldSourceDocument:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDocument(v)
		return nil
	case record.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case record.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case record.FieldWeight:
		v, ok := value.(*entity.Measurement)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case record.FieldHeight:
		v, ok := value.(*entity.Measurement)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case record.FieldBmi:
		v, ok := value.(*entity.Measurement)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBmi(v)
		return nil
	case record.FieldMedicalHistory:
		v, ok := value.(*entity.MedicalHistory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicalHistory(v)
		return nil
	case record.FieldFamilyHistory:
		v, ok := value.(*entity.FamilyHistory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFamilyHistory(v)
		return nil
	case record.FieldSocialHistory:
		v, ok := value.(*entity.SocialHistory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSocialHistory(v)
		return nil
	case record.FieldAllergies:
		v, ok := value.([]entity.Allergy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergies(v)
		return nil
	case record.FieldMedications:
		v, ok := value.([]entity.Medication)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedications(v)
		return nil
	case record.FieldVitals:
		v, ok := value.(*entity.Vitals)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVitals(v)
		return nil
	case record.FieldTestsOrdered:
		v, ok := value.([]entity.TestOrder)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestsOrdered(v)
		return nil
	case record.FieldTestResults:
		v, ok := value.([]entity.TestResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestResults(v)
		return nil
	case record.FieldBillingInformation:
		v, ok := value.(*entity.BillingInformation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillingInformation(v)
		return nil
	case record.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case record.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Record field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Record numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(record.FieldProviderID) {
		fields = append(fields, record.FieldProviderID)
	}
	if m.FieldCleared(record.FieldErrorMessage) {
		fields = append(fields, record.FieldErrorMessage)
	}
	if m.FieldCleared(record.FieldWeight) {
		fields = append(fields, record.FieldWeight)
	}
	if m.FieldCleared(record.FieldHeight) {
		fields = append(fields, record.FieldHeight)
	}
	if m.FieldCleared(record.FieldBmi) {
		fields = append(fields, record.FieldBmi)
	}
	if m.FieldCleared(record.FieldMedicalHistory) {
		fields = append(fields, record.FieldMedicalHistory)
	}
	if m.FieldCleared(record.FieldFamilyHistory) {
		fields = append(fields, record.FieldFamilyHistory)
	}
	if m.FieldCleared(record.FieldSocialHistory) {
		fields = append(fields, record.FieldSocialHistory)
	}
	if m.FieldCleared(record.FieldAllergies) {
		fields = append(fields, record.FieldAllergies)
	}
	if m.FieldCleared(record.FieldMedications) {
		fields = append(fields, record.FieldMedications)
	}
	if m.FieldCleared(record.FieldVitals) {
		fields = append(fields, record.FieldVitals)
	}
	if m.FieldCleared(record.FieldTestsOrdered) {
		fields = append(fields, record.FieldTestsOrdered)
	}
	if m.FieldCleared(record.FieldTestResults) {
		fields = append(fields, record.FieldTestResults)
	}
	if m.FieldCleared(record.FieldBillingInformation) {
		fields = append(fields, record.FieldBillingInformation)
	}
	if m.FieldCleared(record.FieldNotes) {
		fields = append(fields, record.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecordMutation) ClearField(name string) error {
	switch name {
	case record.FieldProviderID:
		m.ClearProviderID()
		return nil
	case record.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case record.FieldWeight:
		m.ClearWeight()
		return nil
	case record.FieldHeight:
		m.ClearHeight()
		return nil
	case record.FieldBmi:
		m.ClearBmi()
		return nil
	case record.FieldMedicalHistory:
		m.ClearMedicalHistory()
		return nil
	case record.FieldFamilyHistory:
		m.ClearFamilyHistory()
		return nil
	case record.FieldSocialHistory:
		m.ClearSocialHistory()
		return nil
	case record.FieldAllergies:
		m.ClearAllergies()
		return nil
	case record.FieldMedications:
		m.ClearMedications()
		return nil
	case record.FieldVitals:
		m.ClearVitals()
		return nil
	case record.FieldTestsOrdered:
		m.ClearTestsOrdered()
		return nil
	case record.FieldTestResults:
		m.ClearTestResults()
		return nil
	case record.FieldBillingInformation:
		m.ClearBillingInformation()
		return nil
	case record.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Record nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecordMutation) ResetField(name string) error {
	switch name {
	case record.FieldPatientID:
		m.ResetPatientID()
		return nil
	case record.FieldProviderID:
		m.ResetProviderID()
		return nil
	case record.FieldSourceFilename:
		m.ResetSourceFilename()
		return nil
	case record.FieldSourceFormat:
		m.ResetSourceFormat()
		return nil
	case record.FieldSourceDocument:
		m.ResetSourceDocument()
		return nil
	case record.FieldStatus:
		m.ResetStatus()
		return nil
	case record.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case record.FieldWeight:
		m.ResetWeight()
		return nil
	case record.FieldHeight:
		m.ResetHeight()
		return nil
	case record.FieldBmi:
		m.ResetBmi()
		return nil
	case record.FieldMedicalHistory:
		m.ResetMedicalHistory()
		return nil
	case record.FieldFamilyHistory:
		m.ResetFamilyHistory()
		return nil
	case record.FieldSocialHistory:
		m.ResetSocialHistory()
		return nil
	case record.FieldAllergies:
		m.ResetAllergies()
		return nil
	case record.FieldMedications:
		m.ResetMedications()
		return nil
	case record.FieldVitals:
		m.ResetVitals()
		return nil
	case record.FieldTestsOrdered:
		m.ResetTestsOrdered()
		return nil
	case record.FieldTestResults:
		m.ResetTestResults()
		return nil
	case record.FieldBillingInformation:
		m.ResetBillingInformation()
		return nil
	case record.FieldNotes:
		m.ResetNotes()
		return nil
	case record.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Record field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient != nil {
		edges = append(edges, record.EdgePatient)
	}
	if m.provider != nil {
		edges = append(edges, record.EdgeProvider)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case record.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case record.EdgeProvider:
		if id := m.provider; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient {
		edges = append(edges, record.EdgePatient)
	}
	if m.clearedprovider {
		edges = append(edges, record.EdgeProvider)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecordMutation) EdgeCleared(name string) bool {
	switch name {
	case record.EdgePatient:
		return m.clearedpatient
	case record.EdgeProvider:
		return m.clearedprovider
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecordMutation) ClearEdge(name string) error {
	switch name {
	case record.EdgePatient:
		m.ClearPatient()
		return nil
	case record.EdgeProvider:
		m.ClearProvider()
		return nil
	}
	return fmt.Errorf("unknown Record unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecordMutation) ResetEdge(name string) error {
	switch name {
	case record.EdgePatient:
		m.ResetPatient()
		return nil
	case record.EdgeProvider:
		m.ResetProvider()
		return nil
	}
	return fmt.Errorf("unknown Record edge %s", name)
}
