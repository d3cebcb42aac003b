package domain

import "time"

// Difficulty rating for workout library entries.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// WorkoutLibraryEntry is one exercise in the shared, append-only workout
// library. Any member may extend the library.
type WorkoutLibraryEntry struct {
	Name        string     `json:"name"`
	MuscleGroup string     `json:"muscleGroup"`
	Difficulty  Difficulty `json:"difficulty"`
	Equipment   string     `json:"equipment"`
	VideoURL    string     `json:"videoUrl"`
}

// WorkoutLogEntry is one row of a member's append-only workout history.
type WorkoutLogEntry struct {
	Date     time.Time `json:"date"`
	Exercise string    `json:"exercise"`
	Weight   float64   `json:"weight"` // kg
	Sets     int       `json:"sets"`
	Reps     int       `json:"reps"`
}

// NutritionLogEntry is one row of a member's append-only meal log.
type NutritionLogEntry struct {
	Date           time.Time `json:"date"`
	Food           string    `json:"food"`
	Calories       int       `json:"calories"`
	Macronutrients string    `json:"macronutrients"`
}

// BodyMetricEntry is one row of a member's append-only body metric log.
type BodyMetricEntry struct {
	Date    time.Time `json:"date"`
	Weight  float64   `json:"weight"`  // kg
	BodyFat float64   `json:"bodyFat"` // percent
}

// ProgressPhoto references one uploaded progress photo. The image itself
// lives in object storage under ObjectKey.
type ProgressPhoto struct {
	Date      time.Time `json:"date"`
	ObjectKey string    `json:"-"`
}

// WorkoutPlanEntry is one exercise of a member's workout plan. Entries may
// be authored by the member or their trainer; the two are not modeled as
// distinct.
type WorkoutPlanEntry struct {
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets"`
	Reps     int    `json:"reps"`
	Notes    string `json:"notes,omitempty"`
}
