// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: emr/v1/emr.proto

package emrv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ProcessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`    // UUID
	ProviderId    string                 `protobuf:"bytes,2,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"` // UUID, optional
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`                       // must end in .pdf or .json
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_emr_v1_emr_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessDocumentRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *ProcessDocumentRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *ProcessDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ProcessDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecordId      string                 `protobuf:"bytes,1,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`                                 // PROCESSING | COMPLETED | ERROR
	CostEstimate  string                 `protobuf:"bytes,3,opt,name=cost_estimate,json=costEstimate,proto3" json:"cost_estimate,omitempty"` // stored total_estimate, "0.00" when absent
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_emr_v1_emr_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessDocumentResponse) GetRecordId() string {
	if x != nil {
		return x.RecordId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ProcessDocumentResponse) GetCostEstimate() string {
	if x != nil {
		return x.CostEstimate
	}
	return ""
}

type GetBillingSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBillingSummaryRequest) Reset() {
	*x = GetBillingSummaryRequest{}
	mi := &file_emr_v1_emr_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBillingSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBillingSummaryRequest) ProtoMessage() {}

func (x *GetBillingSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBillingSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetBillingSummaryRequest) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{2}
}

func (x *GetBillingSummaryRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

type DiagnosisCode struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Type          string                 `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"` // primary | secondary
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiagnosisCode) Reset() {
	*x = DiagnosisCode{}
	mi := &file_emr_v1_emr_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiagnosisCode) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiagnosisCode) ProtoMessage() {}

func (x *DiagnosisCode) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiagnosisCode.ProtoReflect.Descriptor instead.
func (*DiagnosisCode) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{3}
}

func (x *DiagnosisCode) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *DiagnosisCode) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *DiagnosisCode) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

type BillingLineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Cost          string                 `protobuf:"bytes,3,opt,name=cost,proto3" json:"cost,omitempty"` // decimal string, USD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BillingLineItem) Reset() {
	*x = BillingLineItem{}
	mi := &file_emr_v1_emr_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BillingLineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BillingLineItem) ProtoMessage() {}

func (x *BillingLineItem) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BillingLineItem.ProtoReflect.Descriptor instead.
func (*BillingLineItem) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{4}
}

func (x *BillingLineItem) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *BillingLineItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *BillingLineItem) GetCost() string {
	if x != nil {
		return x.Cost
	}
	return ""
}

type GetBillingSummaryResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	RecordId        string                 `protobuf:"bytes,1,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	DiagnosisCodes  []*DiagnosisCode       `protobuf:"bytes,2,rep,name=diagnosis_codes,json=diagnosisCodes,proto3" json:"diagnosis_codes,omitempty"`
	Items           []*BillingLineItem     `protobuf:"bytes,3,rep,name=items,proto3" json:"items,omitempty"`
	StoredTotal     string                 `protobuf:"bytes,4,opt,name=stored_total,json=storedTotal,proto3" json:"stored_total,omitempty"`
	RecomputedTotal string                 `protobuf:"bytes,5,opt,name=recomputed_total,json=recomputedTotal,proto3" json:"recomputed_total,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetBillingSummaryResponse) Reset() {
	*x = GetBillingSummaryResponse{}
	mi := &file_emr_v1_emr_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBillingSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBillingSummaryResponse) ProtoMessage() {}

func (x *GetBillingSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBillingSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetBillingSummaryResponse) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{5}
}

func (x *GetBillingSummaryResponse) GetRecordId() string {
	if x != nil {
		return x.RecordId
	}
	return ""
}

func (x *GetBillingSummaryResponse) GetDiagnosisCodes() []*DiagnosisCode {
	if x != nil {
		return x.DiagnosisCodes
	}
	return nil
}

func (x *GetBillingSummaryResponse) GetItems() []*BillingLineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *GetBillingSummaryResponse) GetStoredTotal() string {
	if x != nil {
		return x.StoredTotal
	}
	return ""
}

func (x *GetBillingSummaryResponse) GetRecomputedTotal() string {
	if x != nil {
		return x.RecomputedTotal
	}
	return ""
}

type ListRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecordsRequest) Reset() {
	*x = ListRecordsRequest{}
	mi := &file_emr_v1_emr_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecordsRequest) ProtoMessage() {}

func (x *ListRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListRecordsRequest) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{6}
}

func (x *ListRecordsRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

type Record struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PatientId      string                 `protobuf:"bytes,2,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	ProviderId     string                 `protobuf:"bytes,3,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	SourceFilename string                 `protobuf:"bytes,4,opt,name=source_filename,json=sourceFilename,proto3" json:"source_filename,omitempty"`
	SourceFormat   string                 `protobuf:"bytes,5,opt,name=source_format,json=sourceFormat,proto3" json:"source_format,omitempty"` // PDF | JSON
	Status         string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage   string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CostEstimate   string                 `protobuf:"bytes,8,opt,name=cost_estimate,json=costEstimate,proto3" json:"cost_estimate,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Record) Reset() {
	*x = Record{}
	mi := &file_emr_v1_emr_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Record) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Record) ProtoMessage() {}

func (x *Record) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Record.ProtoReflect.Descriptor instead.
func (*Record) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{7}
}

func (x *Record) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Record) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *Record) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *Record) GetSourceFilename() string {
	if x != nil {
		return x.SourceFilename
	}
	return ""
}

func (x *Record) GetSourceFormat() string {
	if x != nil {
		return x.SourceFormat
	}
	return ""
}

func (x *Record) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Record) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Record) GetCostEstimate() string {
	if x != nil {
		return x.CostEstimate
	}
	return ""
}

func (x *Record) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*Record              `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecordsResponse) Reset() {
	*x = ListRecordsResponse{}
	mi := &file_emr_v1_emr_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecordsResponse) ProtoMessage() {}

func (x *ListRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListRecordsResponse) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{8}
}

func (x *ListRecordsResponse) GetRecords() []*Record {
	if x != nil {
		return x.Records
	}
	return nil
}

type ExportBillingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillingRequest) Reset() {
	*x = ExportBillingRequest{}
	mi := &file_emr_v1_emr_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillingRequest) ProtoMessage() {}

func (x *ExportBillingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillingRequest.ProtoReflect.Descriptor instead.
func (*ExportBillingRequest) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{9}
}

func (x *ExportBillingRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

type ExportBillingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillingResponse) Reset() {
	*x = ExportBillingResponse{}
	mi := &file_emr_v1_emr_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillingResponse) ProtoMessage() {}

func (x *ExportBillingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillingResponse.ProtoReflect.Descriptor instead.
func (*ExportBillingResponse) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{10}
}

func (x *ExportBillingResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type CreatePatientRequest struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	FirstName             string                 `protobuf:"bytes,1,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName              string                 `protobuf:"bytes,2,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	DateOfBirth           string                 `protobuf:"bytes,3,opt,name=date_of_birth,json=dateOfBirth,proto3" json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Address               string                 `protobuf:"bytes,4,opt,name=address,proto3" json:"address,omitempty"`
	PhoneNumber           string                 `protobuf:"bytes,5,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	EmergencyContact      string                 `protobuf:"bytes,6,opt,name=emergency_contact,json=emergencyContact,proto3" json:"emergency_contact,omitempty"`
	EmergencyContactPhone string                 `protobuf:"bytes,7,opt,name=emergency_contact_phone,json=emergencyContactPhone,proto3" json:"emergency_contact_phone,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *CreatePatientRequest) Reset() {
	*x = CreatePatientRequest{}
	mi := &file_emr_v1_emr_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePatientRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePatientRequest) ProtoMessage() {}

func (x *CreatePatientRequest) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePatientRequest.ProtoReflect.Descriptor instead.
func (*CreatePatientRequest) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{11}
}

func (x *CreatePatientRequest) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *CreatePatientRequest) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *CreatePatientRequest) GetDateOfBirth() string {
	if x != nil {
		return x.DateOfBirth
	}
	return ""
}

func (x *CreatePatientRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *CreatePatientRequest) GetPhoneNumber() string {
	if x != nil {
		return x.PhoneNumber
	}
	return ""
}

func (x *CreatePatientRequest) GetEmergencyContact() string {
	if x != nil {
		return x.EmergencyContact
	}
	return ""
}

func (x *CreatePatientRequest) GetEmergencyContactPhone() string {
	if x != nil {
		return x.EmergencyContactPhone
	}
	return ""
}

type Patient struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Id                    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FirstName             string                 `protobuf:"bytes,2,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName              string                 `protobuf:"bytes,3,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	DateOfBirth           string                 `protobuf:"bytes,4,opt,name=date_of_birth,json=dateOfBirth,proto3" json:"date_of_birth,omitempty"`
	Address               string                 `protobuf:"bytes,5,opt,name=address,proto3" json:"address,omitempty"`
	PhoneNumber           string                 `protobuf:"bytes,6,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	EmergencyContact      string                 `protobuf:"bytes,7,opt,name=emergency_contact,json=emergencyContact,proto3" json:"emergency_contact,omitempty"`
	EmergencyContactPhone string                 `protobuf:"bytes,8,opt,name=emergency_contact_phone,json=emergencyContactPhone,proto3" json:"emergency_contact_phone,omitempty"`
	CreatedAt             string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt             string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *Patient) Reset() {
	*x = Patient{}
	mi := &file_emr_v1_emr_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Patient) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Patient) ProtoMessage() {}

func (x *Patient) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Patient.ProtoReflect.Descriptor instead.
func (*Patient) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{12}
}

func (x *Patient) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Patient) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *Patient) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *Patient) GetDateOfBirth() string {
	if x != nil {
		return x.DateOfBirth
	}
	return ""
}

func (x *Patient) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Patient) GetPhoneNumber() string {
	if x != nil {
		return x.PhoneNumber
	}
	return ""
}

func (x *Patient) GetEmergencyContact() string {
	if x != nil {
		return x.EmergencyContact
	}
	return ""
}

func (x *Patient) GetEmergencyContactPhone() string {
	if x != nil {
		return x.EmergencyContactPhone
	}
	return ""
}

func (x *Patient) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Patient) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreatePatientResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Patient       *Patient               `protobuf:"bytes,1,opt,name=patient,proto3" json:"patient,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePatientResponse) Reset() {
	*x = CreatePatientResponse{}
	mi := &file_emr_v1_emr_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePatientResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePatientResponse) ProtoMessage() {}

func (x *CreatePatientResponse) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePatientResponse.ProtoReflect.Descriptor instead.
func (*CreatePatientResponse) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{13}
}

func (x *CreatePatientResponse) GetPatient() *Patient {
	if x != nil {
		return x.Patient
	}
	return nil
}

type GetPatientRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPatientRequest) Reset() {
	*x = GetPatientRequest{}
	mi := &file_emr_v1_emr_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPatientRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPatientRequest) ProtoMessage() {}

func (x *GetPatientRequest) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPatientRequest.ProtoReflect.Descriptor instead.
func (*GetPatientRequest) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{14}
}

func (x *GetPatientRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetPatientResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Patient       *Patient               `protobuf:"bytes,1,opt,name=patient,proto3" json:"patient,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPatientResponse) Reset() {
	*x = GetPatientResponse{}
	mi := &file_emr_v1_emr_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPatientResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPatientResponse) ProtoMessage() {}

func (x *GetPatientResponse) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPatientResponse.ProtoReflect.Descriptor instead.
func (*GetPatientResponse) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{15}
}

func (x *GetPatientResponse) GetPatient() *Patient {
	if x != nil {
		return x.Patient
	}
	return nil
}

type ListPatientsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPatientsRequest) Reset() {
	*x = ListPatientsRequest{}
	mi := &file_emr_v1_emr_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPatientsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPatientsRequest) ProtoMessage() {}

func (x *ListPatientsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPatientsRequest.ProtoReflect.Descriptor instead.
func (*ListPatientsRequest) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{16}
}

type ListPatientsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Patients      []*Patient             `protobuf:"bytes,1,rep,name=patients,proto3" json:"patients,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPatientsResponse) Reset() {
	*x = ListPatientsResponse{}
	mi := &file_emr_v1_emr_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPatientsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPatientsResponse) ProtoMessage() {}

func (x *ListPatientsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_emr_v1_emr_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPatientsResponse.ProtoReflect.Descriptor instead.
func (*ListPatientsResponse) Descriptor() ([]byte, []int) {
	return file_emr_v1_emr_proto_rawDescGZIP(), []int{17}
}

func (x *ListPatientsResponse) GetPatients() []*Patient {
	if x != nil {
		return x.Patients
	}
	return nil
}

var File_emr_v1_emr_proto protoreflect.FileDescriptor

const file_emr_v1_emr_proto_rawDesc = "" +
	"\n" +
	"\x10emr/v1/emr.proto\x12\x06emr.v1\"\x8e\x01\n" +
	"\x16ProcessDocumentRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x1f\n" +
	"\vprovider_id\x18\x02 \x01(\tR\n" +
	"providerId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\"s\n" +
	"\x17ProcessDocumentResponse\x12\x1b\n" +
	"\trecord_id\x18\x01 \x01(\tR\brecordId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12#\n" +
	"\rcost_estimate\x18\x03 \x01(\tR\fcostEstimate\"9\n" +
	"\x18GetBillingSummaryRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\"Y\n" +
	"\rDiagnosisCode\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\"[\n" +
	"\x0fBillingLineItem\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x12\n" +
	"\x04cost\x18\x03 \x01(\tR\x04cost\"\xf5\x01\n" +
	"\x19GetBillingSummaryResponse\x12\x1b\n" +
	"\trecord_id\x18\x01 \x01(\tR\brecordId\x12>\n" +
	"\x0fdiagnosis_codes\x18\x02 \x03(\v2\x15.emr.v1.DiagnosisCodeR\x0ediagnosisCodes\x12-\n" +
	"\x05items\x18\x03 \x03(\v2\x17.emr.v1.BillingLineItemR\x05items\x12!\n" +
	"\fstored_total\x18\x04 \x01(\tR\vstoredTotal\x12)\n" +
	"\x10recomputed_total\x18\x05 \x01(\tR\x0frecomputedTotal\"3\n" +
	"\x12ListRecordsRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\"\xa7\x02\n" +
	"\x06Record\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x02 \x01(\tR\tpatientId\x12\x1f\n" +
	"\vprovider_id\x18\x03 \x01(\tR\n" +
	"providerId\x12'\n" +
	"\x0fsource_filename\x18\x04 \x01(\tR\x0esourceFilename\x12#\n" +
	"\rsource_format\x18\x05 \x01(\tR\fsourceFormat\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12#\n" +
	"\rcost_estimate\x18\b \x01(\tR\fcostEstimate\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"?\n" +
	"\x13ListRecordsResponse\x12(\n" +
	"\arecords\x18\x01 \x03(\v2\x0e.emr.v1.RecordR\arecords\"5\n" +
	"\x14ExportBillingRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\"+\n" +
	"\x15ExportBillingResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x98\x02\n" +
	"\x14CreatePatientRequest\x12\x1d\n" +
	"\n" +
	"first_name\x18\x01 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x02 \x01(\tR\blastName\x12\"\n" +
	"\rdate_of_birth\x18\x03 \x01(\tR\vdateOfBirth\x12\x18\n" +
	"\aaddress\x18\x04 \x01(\tR\aaddress\x12!\n" +
	"\fphone_number\x18\x05 \x01(\tR\vphoneNumber\x12+\n" +
	"\x11emergency_contact\x18\x06 \x01(\tR\x10emergencyContact\x126\n" +
	"\x17emergency_contact_phone\x18\a \x01(\tR\x15emergencyContactPhone\"\xd9\x02\n" +
	"\aPatient\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"first_name\x18\x02 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x03 \x01(\tR\blastName\x12\"\n" +
	"\rdate_of_birth\x18\x04 \x01(\tR\vdateOfBirth\x12\x18\n" +
	"\aaddress\x18\x05 \x01(\tR\aaddress\x12!\n" +
	"\fphone_number\x18\x06 \x01(\tR\vphoneNumber\x12+\n" +
	"\x11emergency_contact\x18\a \x01(\tR\x10emergencyContact\x126\n" +
	"\x17emergency_contact_phone\x18\b \x01(\tR\x15emergencyContactPhone\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"B\n" +
	"\x15CreatePatientResponse\x12)\n" +
	"\apatient\x18\x01 \x01(\v2\x0f.emr.v1.PatientR\apatient\"#\n" +
	"\x11GetPatientRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"?\n" +
	"\x12GetPatientResponse\x12)\n" +
	"\apatient\x18\x01 \x01(\v2\x0f.emr.v1.PatientR\apatient\"\x15\n" +
	"\x13ListPatientsRequest\"C\n" +
	"\x14ListPatientsResponse\x12+\n" +
	"\bpatients\x18\x01 \x03(\v2\x0f.emr.v1.PatientR\bpatients2\xd0\x02\n" +
	"\n" +
	"EMRService\x12R\n" +
	"\x0fProcessDocument\x12\x1e.emr.v1.ProcessDocumentRequest\x1a\x1f.emr.v1.ProcessDocumentResponse\x12X\n" +
	"\x11GetBillingSummary\x12 .emr.v1.GetBillingSummaryRequest\x1a!.emr.v1.GetBillingSummaryResponse\x12F\n" +
	"\vListRecords\x12\x1a.emr.v1.ListRecordsRequest\x1a\x1b.emr.v1.ListRecordsResponse\x12L\n" +
	"\rExportBilling\x12\x1c.emr.v1.ExportBillingRequest\x1a\x1d.emr.v1.ExportBillingResponse2\xef\x01\n" +
	"\x0fPatientsService\x12L\n" +
	"\rCreatePatient\x12\x1c.emr.v1.CreatePatientRequest\x1a\x1d.emr.v1.CreatePatientResponse\x12C\n" +
	"\n" +
	"GetPatient\x12\x19.emr.v1.GetPatientRequest\x1a\x1a.emr.v1.GetPatientResponse\x12I\n" +
	"\fListPatients\x12\x1b.emr.v1.ListPatientsRequest\x1a\x1c.emr.v1.ListPatientsResponseB=Z;github.com/bryankwang/EMR-Processing/gen/proto/emr/v1;emrv1b\x06proto3"

var (
	file_emr_v1_emr_proto_rawDescOnce sync.Once
	file_emr_v1_emr_proto_rawDescData []byte
)

func file_emr_v1_emr_proto_rawDescGZIP() []byte {
	file_emr_v1_emr_proto_rawDescOnce.Do(func() {
		file_emr_v1_emr_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_emr_v1_emr_proto_rawDesc), len(file_emr_v1_emr_proto_rawDesc)))
	})
	return file_emr_v1_emr_proto_rawDescData
}

var file_emr_v1_emr_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_emr_v1_emr_proto_goTypes = []any{
	(*ProcessDocumentRequest)(nil),    // 0: emr.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),   // 1: emr.v1.ProcessDocumentResponse
	(*GetBillingSummaryRequest)(nil),  // 2: emr.v1.GetBillingSummaryRequest
	(*DiagnosisCode)(nil),             // 3: emr.v1.DiagnosisCode
	(*BillingLineItem)(nil),           // 4: emr.v1.BillingLineItem
	(*GetBillingSummaryResponse)(nil), // 5: emr.v1.GetBillingSummaryResponse
	(*ListRecordsRequest)(nil),        // 6: emr.v1.ListRecordsRequest
	(*Record)(nil),                    // 7: emr.v1.Record
	(*ListRecordsResponse)(nil),       // 8: emr.v1.ListRecordsResponse
	(*ExportBillingRequest)(nil),      // 9: emr.v1.ExportBillingRequest
	(*ExportBillingResponse)(nil),     // 10: emr.v1.ExportBillingResponse
	(*CreatePatientRequest)(nil),      // 11: emr.v1.CreatePatientRequest
	(*Patient)(nil),                   // 12: emr.v1.Patient
	(*CreatePatientResponse)(nil),     // 13: emr.v1.CreatePatientResponse
	(*GetPatientRequest)(nil),         // 14: emr.v1.GetPatientRequest
	(*GetPatientResponse)(nil),        // 15: emr.v1.GetPatientResponse
	(*ListPatientsRequest)(nil),       // 16: emr.v1.ListPatientsRequest
	(*ListPatientsResponse)(nil),      // 17: emr.v1.ListPatientsResponse
}
var file_emr_v1_emr_proto_depIdxs = []int32{
	3,  // 0: emr.v1.GetBillingSummaryResponse.diagnosis_codes:type_name -> emr.v1.DiagnosisCode
	4,  // 1: emr.v1.GetBillingSummaryResponse.items:type_name -> emr.v1.BillingLineItem
	7,  // 2: emr.v1.ListRecordsResponse.records:type_name -> emr.v1.Record
	12, // 3: emr.v1.CreatePatientResponse.patient:type_name -> emr.v1.Patient
	12, // 4: emr.v1.GetPatientResponse.patient:type_name -> emr.v1.Patient
	12, // 5: emr.v1.ListPatientsResponse.patients:type_name -> emr.v1.Patient
	0,  // 6: emr.v1.EMRService.ProcessDocument:input_type -> emr.v1.ProcessDocumentRequest
	2,  // 7: emr.v1.EMRService.GetBillingSummary:input_type -> emr.v1.GetBillingSummaryRequest
	6,  // 8: emr.v1.EMRService.ListRecords:input_type -> emr.v1.ListRecordsRequest
	9,  // 9: emr.v1.EMRService.ExportBilling:input_type -> emr.v1.ExportBillingRequest
	11, // 10: emr.v1.PatientsService.CreatePatient:input_type -> emr.v1.CreatePatientRequest
	14, // 11: emr.v1.PatientsService.GetPatient:input_type -> emr.v1.GetPatientRequest
	16, // 12: emr.v1.PatientsService.ListPatients:input_type -> emr.v1.ListPatientsRequest
	1,  // 13: emr.v1.EMRService.ProcessDocument:output_type -> emr.v1.ProcessDocumentResponse
	5,  // 14: emr.v1.EMRService.GetBillingSummary:output_type -> emr.v1.GetBillingSummaryResponse
	8,  // 15: emr.v1.EMRService.ListRecords:output_type -> emr.v1.ListRecordsResponse
	10, // 16: emr.v1.EMRService.ExportBilling:output_type -> emr.v1.ExportBillingResponse
	13, // 17: emr.v1.PatientsService.CreatePatient:output_type -> emr.v1.CreatePatientResponse
	15, // 18: emr.v1.PatientsService.GetPatient:output_type -> emr.v1.GetPatientResponse
	17, // 19: emr.v1.PatientsService.ListPatients:output_type -> emr.v1.ListPatientsResponse
	13, // [13:20] is the sub-list for method output_type
	6,  // [6:13] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_emr_v1_emr_proto_init() }
func file_emr_v1_emr_proto_init() {
	if File_emr_v1_emr_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_emr_v1_emr_proto_rawDesc), len(file_emr_v1_emr_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_emr_v1_emr_proto_goTypes,
		DependencyIndexes: file_emr_v1_emr_proto_depIdxs,
		MessageInfos:      file_emr_v1_emr_proto_msgTypes,
	}.Build()
	File_emr_v1_emr_proto = out.File
	file_emr_v1_emr_proto_goTypes = nil
	file_emr_v1_emr_proto_depIdxs = nil
}
