package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/workoutkit/tcx-backend-go/internal/models"
)

// OperationRepository handles database operations for the edit history
type OperationRepository struct {
	db *sql.DB
}

// NewOperationRepository creates a new operation repository
func NewOperationRepository(db *sql.DB) *OperationRepository {
	return &OperationRepository{db: db}
}

// Insert stores a new operation record
func (r *OperationRepository) Insert(rec *models.OperationRecord) error {
	query := `INSERT INTO operations (id, kind, input_ids, output_id, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		rec.ID, rec.Kind, strings.Join(rec.InputIDs, ","),
		rec.OutputID, rec.Detail, rec.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert operation: %w", err)
	}
	return nil
}

// List retrieves the newest operations first, up to limit
func (r *OperationRepository) List(limit int) ([]models.OperationRecord, error) {
	if limit < 1 {
		limit = 100
	}

	query := `SELECT id, kind, input_ids, output_id, detail, created_at
		FROM operations ORDER BY created_at DESC, id LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	var records []models.OperationRecord
	for rows.Next() {
		var rec models.OperationRecord
		var inputIDs string
		var detail sql.NullString
		var created int64

		if err := rows.Scan(&rec.ID, &rec.Kind, &inputIDs, &rec.OutputID, &detail, &created); err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}

		if inputIDs != "" {
			rec.InputIDs = strings.Split(inputIDs, ",")
		}
		rec.Detail = detail.String
		rec.CreatedAt = time.Unix(created, 0).UTC()
		records = append(records, rec)
	}

	return records, rows.Err()
}
