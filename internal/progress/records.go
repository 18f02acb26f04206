// Package progress keeps the durable per-lesson and per-drill learning
// records and the store that persists them as whole maps in the key-value
// store. Writes are last-writer-wins on the full map; callers read, mutate
// and save back.
package progress

import "time"

// LessonState is a lesson's position in the mastery lifecycle.
type LessonState string

const (
	LessonLocked     LessonState = "locked"
	LessonAvailable  LessonState = "available"
	LessonInProgress LessonState = "in_progress"
	LessonMastered   LessonState = "mastered"
)

// LessonRecord tracks mastery of a single lesson. Created lazily on first
// interaction, never deleted. CompletedDrills never exceeds TotalDrills.
type LessonRecord struct {
	State           LessonState `json:"state"`
	CompletedDrills int         `json:"completed_drills"`
	TotalDrills     int         `json:"total_drills"`
	LastScorePct    float64     `json:"last_score_pct"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// DrillRecord tracks lifetime answer counts for a single drill. Counters
// increment monotonically and are never deleted; this is the substrate the
// review scheduler ranks on.
type DrillRecord struct {
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	LastAnswerAt time.Time `json:"last_answer_at"`
}

// LessonPatch holds partial lesson-record fields to merge into an existing
// record. Nil fields are left untouched.
type LessonPatch struct {
	State           *LessonState
	CompletedDrills *int
	TotalDrills     *int
	LastScorePct    *float64
}
