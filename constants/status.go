package constants

// RecordStatus is the canonical processing status for rows in records.
type RecordStatus string

// Stable values (store these exact strings in DB).
const (
	RecordStatusProcessing RecordStatus = "PROCESSING" // staged, structuring in flight
	RecordStatusCompleted  RecordStatus = "COMPLETED"  // all sections persisted atomically
	RecordStatusError      RecordStatus = "ERROR"      // audit row: raw document + error only
)

// RecordStatuses holds the allowed values for the status column on records.
var RecordStatuses = []string{
	string(RecordStatusProcessing),
	string(RecordStatusCompleted),
	string(RecordStatusError),
}
