package models

import "time"

// WorkoutRecord is a stored workout: summary columns for querying plus the
// raw TCX document for editing and download.
type WorkoutRecord struct {
	ID             string    `json:"id" db:"id"`
	Filename       string    `json:"filename" db:"filename"`
	WorkoutID      string    `json:"workoutId" db:"workout_id"` // TCX Id element (opening timestamp)
	Sport          string    `json:"sport" db:"sport"`
	StartTime      time.Time `json:"startTime" db:"start_time"`
	FinishTime     time.Time `json:"finishTime" db:"finish_time"`
	TotalSeconds   float64   `json:"totalSeconds" db:"total_seconds"`
	DistanceMeters float64   `json:"distanceMeters" db:"distance_meters"`
	Calories       int       `json:"calories" db:"calories"`
	LapCount       int       `json:"lapCount" db:"lap_count"`
	Raw            []byte    `json:"-" db:"raw"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// WorkoutSummary is the read model returned by the API: derived values
// recomputed from the document on demand.
type WorkoutSummary struct {
	ID              string       `json:"id"`
	WorkoutID       string       `json:"workoutId"`
	Sport           string       `json:"sport"`
	StartTime       time.Time    `json:"startTime"`
	FinishTime      time.Time    `json:"finishTime"`
	DurationSeconds float64      `json:"durationSeconds"`
	Laps            []LapSummary `json:"laps"`
}

// LapSummary describes one lap of a workout.
type LapSummary struct {
	StartTime      time.Time      `json:"startTime"`
	FinishTime     time.Time      `json:"finishTime"`
	TotalSeconds   float64        `json:"totalSeconds"`
	DistanceMeters float64        `json:"distanceMeters"`
	Calories       int            `json:"calories"`
	AvgHeartRate   *int           `json:"avgHeartRate,omitempty"`
	MaxHeartRate   *int           `json:"maxHeartRate,omitempty"`
	Tracks         []TrackSummary `json:"tracks"`
}

// TrackSummary describes one track of a lap.
type TrackSummary struct {
	StartTime         time.Time `json:"startTime"`
	FinishTime        time.Time `json:"finishTime"`
	Trackpoints       int       `json:"trackpoints"`
	GPSDistanceMeters float64   `json:"gpsDistanceMeters,omitempty"`
}

// WorkoutsResponse is a paginated list of workout records.
type WorkoutsResponse struct {
	Data       []WorkoutRecord `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// WorkoutFilter holds query parameters for listing workouts.
type WorkoutFilter struct {
	Sport     string `form:"sport"`
	StartTime int64  `form:"startTime"` // Unix timestamp
	EndTime   int64  `form:"endTime"`   // Unix timestamp
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
}

// MergeRequest asks for two stored workouts to be combined.
type MergeRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	DonorID    string `json:"donorId" binding:"required"`
	Kind       string `json:"kind"`
}

// ScaleRequest asks for a stored workout's trackpoint values to be scaled.
// Nil selector fields default to true.
type ScaleRequest struct {
	Factor   float64 `json:"factor" binding:"required"`
	Distance *bool   `json:"distance"`
	Cadence  *bool   `json:"cadence"`
	Watts    *bool   `json:"watts"`
}
