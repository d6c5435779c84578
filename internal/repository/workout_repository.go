package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/workoutkit/tcx-backend-go/internal/models"
)

// WorkoutRepository handles database operations for stored workouts
type WorkoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository creates a new workout repository
func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

const workoutColumns = `id, filename, workout_id, sport, start_time, finish_time,
	total_seconds, distance_meters, calories, lap_count, raw, created_at`

// Insert stores a new workout record
func (r *WorkoutRepository) Insert(rec *models.WorkoutRecord) error {
	query := `INSERT INTO workouts (` + workoutColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		rec.ID, rec.Filename, rec.WorkoutID, rec.Sport,
		rec.StartTime.Unix(), rec.FinishTime.Unix(),
		rec.TotalSeconds, rec.DistanceMeters, rec.Calories, rec.LapCount,
		rec.Raw, rec.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert workout: %w", err)
	}
	return nil
}

// GetByID retrieves a single workout record, nil when absent
func (r *WorkoutRepository) GetByID(id string) (*models.WorkoutRecord, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = ?`

	rec, err := scanWorkout(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}
	return rec, nil
}

// List retrieves workout records with filtering and pagination
func (r *WorkoutRepository) List(filter models.WorkoutFilter) ([]models.WorkoutRecord, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.Sport != "" {
		conditions = append(conditions, "sport = ?")
		args = append(args, filter.Sport)
	}
	if filter.StartTime > 0 {
		conditions = append(conditions, "start_time >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "finish_time <= ?")
		args = append(args, filter.EndTime)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM workouts"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workouts: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	offset := (filter.Page - 1) * filter.PageSize

	query := `SELECT ` + workoutColumns + ` FROM workouts` + where +
		` ORDER BY start_time DESC LIMIT ? OFFSET ?`
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query workouts: %w", err)
	}
	defer rows.Close()

	var records []models.WorkoutRecord
	for rows.Next() {
		rec, err := scanWorkout(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan workout: %w", err)
		}
		records = append(records, *rec)
	}

	return records, total, rows.Err()
}

// Delete removes a workout record, reporting whether it existed
func (r *WorkoutRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM workouts WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete workout: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete workout: %w", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkout(row rowScanner) (*models.WorkoutRecord, error) {
	var rec models.WorkoutRecord
	var start, finish, created int64

	err := row.Scan(
		&rec.ID, &rec.Filename, &rec.WorkoutID, &rec.Sport,
		&start, &finish,
		&rec.TotalSeconds, &rec.DistanceMeters, &rec.Calories, &rec.LapCount,
		&rec.Raw, &created,
	)
	if err != nil {
		return nil, err
	}

	rec.StartTime = time.Unix(start, 0).UTC()
	rec.FinishTime = time.Unix(finish, 0).UTC()
	rec.CreatedAt = time.Unix(created, 0).UTC()
	return &rec, nil
}
