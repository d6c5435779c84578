package models

import "time"

// Operation kinds recorded in the history log.
const (
	OperationImport = "import"
	OperationMerge  = "merge"
	OperationScale  = "scale"
)

// OperationRecord is one entry of the edit history: which operation ran,
// which stored workouts went in and which came out.
type OperationRecord struct {
	ID        string    `json:"id" db:"id"`
	Kind      string    `json:"kind" db:"kind"`
	InputIDs  []string  `json:"inputIds" db:"input_ids"`
	OutputID  string    `json:"outputId" db:"output_id"`
	Detail    string    `json:"detail,omitempty" db:"detail"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
