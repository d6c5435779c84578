package service

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/workoutkit/tcx-backend-go/internal/models"
	"github.com/workoutkit/tcx-backend-go/internal/repository"
	"github.com/workoutkit/tcx-backend-go/internal/spatial"
	"github.com/workoutkit/tcx-backend-go/internal/tcx"
)

// ErrNotFound reports a workout id with no stored record.
var ErrNotFound = errors.New("workout not found")

// WorkoutService handles business logic for stored workouts: importing TCX
// documents, merging and scaling them, and recording the edit history.
type WorkoutService struct {
	workoutRepo   *repository.WorkoutRepository
	operationRepo *repository.OperationRepository
}

// NewWorkoutService creates a new workout service
func NewWorkoutService(workoutRepo *repository.WorkoutRepository, operationRepo *repository.OperationRepository) *WorkoutService {
	return &WorkoutService{
		workoutRepo:   workoutRepo,
		operationRepo: operationRepo,
	}
}

// Import parses an uploaded TCX document and stores it with its summary
// columns. The original bytes are kept verbatim.
func (s *WorkoutService) Import(filename string, data []byte) (*models.WorkoutRecord, error) {
	workout, err := tcx.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &tcx.ReadError{Path: filename, Err: err}
	}

	rec, err := buildRecord(filename, data, workout)
	if err != nil {
		return nil, err
	}

	if err := s.store(rec, models.OperationImport, nil, filename); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get retrieves a stored workout record.
func (s *WorkoutService) Get(id string) (*models.WorkoutRecord, error) {
	rec, err := s.workoutRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

// List retrieves workout records with filtering and pagination.
func (s *WorkoutService) List(filter models.WorkoutFilter) (*models.WorkoutsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	records, total, err := s.workoutRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	return &models.WorkoutsResponse{
		Data:       records,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.PageSize))),
	}, nil
}

// Delete removes a stored workout.
func (s *WorkoutService) Delete(id string) error {
	existed, err := s.workoutRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}

// Summary recomputes the read model from the stored document.
func (s *WorkoutService) Summary(id string) (*models.WorkoutSummary, error) {
	rec, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	workout, err := tcx.Parse(bytes.NewReader(rec.Raw))
	if err != nil {
		return nil, err
	}
	return summarize(rec.ID, workout)
}

// Merge combines two stored workouts under the given policy and stores the
// result as a new record. Inputs are left untouched.
func (s *WorkoutService) Merge(req models.MergeRequest) (*models.WorkoutRecord, error) {
	kind := tcx.AppendLaps
	if req.Kind != "" {
		var err error
		kind, err = tcx.ParseMergeKind(req.Kind)
		if err != nil {
			return nil, err
		}
	}

	receiverRec, err := s.Get(req.ReceiverID)
	if err != nil {
		return nil, err
	}
	donorRec, err := s.Get(req.DonorID)
	if err != nil {
		return nil, err
	}

	receiver, err := tcx.Parse(bytes.NewReader(receiverRec.Raw))
	if err != nil {
		return nil, err
	}
	donor, err := tcx.Parse(bytes.NewReader(donorRec.Raw))
	if err != nil {
		return nil, err
	}

	if err := receiver.Merge(donor, kind); err != nil {
		return nil, err
	}

	raw, err := receiver.Bytes()
	if err != nil {
		return nil, err
	}

	rec, err := buildRecord(receiverRec.Filename, raw, receiver)
	if err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("kind=%s", kind)
	if err := s.store(rec, models.OperationMerge, []string{req.ReceiverID, req.DonorID}, detail); err != nil {
		return nil, err
	}
	return rec, nil
}

// Scale multiplies the trackpoint values of a stored workout by a factor
// and stores the result as a new record.
func (s *WorkoutService) Scale(id string, req models.ScaleRequest) (*models.WorkoutRecord, error) {
	if req.Factor <= 0 {
		return nil, fmt.Errorf("scale factor must be positive, got %g", req.Factor)
	}

	srcRec, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	workout, err := tcx.Parse(bytes.NewReader(srcRec.Raw))
	if err != nil {
		return nil, err
	}

	opts := tcx.ScaleAll()
	if req.Distance != nil {
		opts.Distance = *req.Distance
	}
	if req.Cadence != nil {
		opts.Cadence = *req.Cadence
	}
	if req.Watts != nil {
		opts.Watts = *req.Watts
	}

	if err := workout.Scale(req.Factor, opts); err != nil {
		return nil, err
	}

	raw, err := workout.Bytes()
	if err != nil {
		return nil, err
	}

	rec, err := buildRecord(srcRec.Filename, raw, workout)
	if err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("factor=%g distance=%t cadence=%t watts=%t",
		req.Factor, opts.Distance, opts.Cadence, opts.Watts)
	if err := s.store(rec, models.OperationScale, []string{id}, detail); err != nil {
		return nil, err
	}
	return rec, nil
}

// Operations lists the newest history entries.
func (s *WorkoutService) Operations(limit int) ([]models.OperationRecord, error) {
	records, err := s.operationRepo.List(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	return records, nil
}

func (s *WorkoutService) store(rec *models.WorkoutRecord, kind string, inputIDs []string, detail string) error {
	if err := s.workoutRepo.Insert(rec); err != nil {
		return err
	}
	op := &models.OperationRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		InputIDs:  inputIDs,
		OutputID:  rec.ID,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.operationRepo.Insert(op); err != nil {
		return err
	}
	return nil
}

// buildRecord derives the summary columns of a record from its document.
func buildRecord(filename string, raw []byte, workout *tcx.Workout) (*models.WorkoutRecord, error) {
	workoutID, err := workout.ID()
	if err != nil {
		return nil, err
	}
	sport, err := workout.Sport()
	if err != nil {
		return nil, err
	}
	start, err := workout.StartTime()
	if err != nil {
		return nil, err
	}
	finish, err := workout.FinishTime()
	if err != nil {
		return nil, err
	}

	var totalSeconds, totalDistance float64
	var totalCalories, lapCount int
	for _, lap := range workout.Laps() {
		lapCount++
		seconds, err := lap.TotalSeconds()
		if err != nil {
			return nil, err
		}
		distance, err := lap.Distance()
		if err != nil {
			return nil, err
		}
		calories, err := lap.Calories()
		if err != nil {
			return nil, err
		}
		totalSeconds += seconds
		totalDistance += distance
		totalCalories += calories
	}

	return &models.WorkoutRecord{
		ID:             uuid.NewString(),
		Filename:       filename,
		WorkoutID:      workoutID,
		Sport:          sport,
		StartTime:      start,
		FinishTime:     finish,
		TotalSeconds:   totalSeconds,
		DistanceMeters: totalDistance,
		Calories:       totalCalories,
		LapCount:       lapCount,
		Raw:            raw,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func summarize(id string, workout *tcx.Workout) (*models.WorkoutSummary, error) {
	workoutID, err := workout.ID()
	if err != nil {
		return nil, err
	}
	sport, err := workout.Sport()
	if err != nil {
		return nil, err
	}
	start, err := workout.StartTime()
	if err != nil {
		return nil, err
	}
	finish, err := workout.FinishTime()
	if err != nil {
		return nil, err
	}

	summary := &models.WorkoutSummary{
		ID:              id,
		WorkoutID:       workoutID,
		Sport:           sport,
		StartTime:       start,
		FinishTime:      finish,
		DurationSeconds: finish.Sub(start).Seconds(),
	}

	for _, lap := range workout.Laps() {
		lapSummary, err := summarizeLap(lap)
		if err != nil {
			return nil, err
		}
		summary.Laps = append(summary.Laps, *lapSummary)
	}

	return summary, nil
}

func summarizeLap(lap tcx.Lap) (*models.LapSummary, error) {
	start, err := lap.StartTime()
	if err != nil {
		return nil, err
	}
	finish, err := lap.FinishTime()
	if err != nil {
		return nil, err
	}
	seconds, err := lap.TotalSeconds()
	if err != nil {
		return nil, err
	}
	distance, err := lap.Distance()
	if err != nil {
		return nil, err
	}
	calories, err := lap.Calories()
	if err != nil {
		return nil, err
	}

	lapSummary := &models.LapSummary{
		StartTime:      start,
		FinishTime:     finish,
		TotalSeconds:   seconds,
		DistanceMeters: distance,
		Calories:       calories,
	}
	if hr, ok := lap.AvgHeartRate(); ok {
		lapSummary.AvgHeartRate = &hr
	}
	if hr, ok := lap.MaxHeartRate(); ok {
		lapSummary.MaxHeartRate = &hr
	}

	for _, track := range lap.Tracks() {
		trackStart, err := track.StartTime()
		if err != nil {
			return nil, err
		}
		trackFinish, err := track.FinishTime()
		if err != nil {
			return nil, err
		}

		points := track.Trackpoints()
		var coords [][2]float64
		for _, tp := range points {
			if lat, lon, ok := tp.Position(); ok {
				coords = append(coords, [2]float64{lat, lon})
			}
		}

		lapSummary.Tracks = append(lapSummary.Tracks, models.TrackSummary{
			StartTime:         trackStart,
			FinishTime:        trackFinish,
			Trackpoints:       len(points),
			GPSDistanceMeters: spatial.PathLength(coords),
		})
	}

	return lapSummary, nil
}
