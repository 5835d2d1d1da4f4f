package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// isUUID is a validation rule for string ids sent by clients.
var isUUID = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return errors.New("must be a valid id")
	}
	return nil
})

// parseableDate accepts anything dateparse understands.
var parseableDate = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := dateparse.ParseAny(s); err != nil {
		return errors.New("must be a valid date")
	}
	return nil
})

type CreateRoutineRequest struct {
	Name string `json:"name"`
}

func (r CreateRoutineRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
	)
}

type CreateExerciseRequest struct {
	RoutineID string `json:"routineId"`
	Name      string `json:"name"`
	TotalSets *int   `json:"totalSets"`
}

func (r CreateExerciseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RoutineID, validation.Required, isUUID),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.TotalSets, validation.NotNil, validation.Min(0)),
	)
}

type UpdateExerciseRequest struct {
	Name      *string `json:"name"`
	TotalSets *int    `json:"totalSets"`
}

func (r UpdateExerciseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.TotalSets, validation.Min(0)),
	)
}

type ReorderItem struct {
	ExerciseID string `json:"exerciseId"`
	Order      int    `json:"order"`
}

func (i ReorderItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ExerciseID, validation.Required, isUUID),
	)
}

type ReorderExercisesRequest struct {
	Exercises []ReorderItem `json:"exercises"`
}

func (r ReorderExercisesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Exercises, validation.NotNil),
	)
}

type CreateLogRequest struct {
	ExerciseID string   `json:"exerciseId"`
	Weight     *float64 `json:"weight"`
	Reps       *int     `json:"reps"`
	Date       string   `json:"date"`
	Notes      string   `json:"notes"`
}

func (r CreateLogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ExerciseID, validation.Required, isUUID),
		validation.Field(&r.Weight, validation.NotNil, validation.Min(0.0)),
		validation.Field(&r.Reps, validation.NotNil, validation.Min(0)),
		validation.Field(&r.Date, parseableDate),
		validation.Field(&r.Notes, validation.Length(0, 2000)),
	)
}

// ParsedDate returns the log date in UTC, or now when the client sent none.
// Call after Validate.
func (r CreateLogRequest) ParsedDate(now time.Time) (time.Time, error) {
	if strings.TrimSpace(r.Date) == "" {
		return now.UTC(), nil
	}
	t, err := dateparse.ParseAny(r.Date)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ProgressPoint is one sample of an exercise's progress chart.
type ProgressPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
}
