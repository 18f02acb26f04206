package level

import "github.com/seralk/lingua/internal/progress"

// LessonIndex supplies the lesson ids that make up a band. The content
// catalog implements it; the gate itself never touches storage.
type LessonIndex interface {
	LessonIDs(l Level) []string
}

// IsUnlocked reports whether the learner may enter target.
//
// A PreA0 placement is a hard floor: only the foundational band is open
// until it has been worked through. PreA0 and A0 are otherwise always
// open. A placement at or above the target admits the learner directly.
// Beyond that, a band opens only when every lesson of the band below it
// is mastered; a band with no known predecessor lessons stays locked.
func IsUnlocked(idx LessonIndex, target Level, lessons map[string]progress.LessonRecord, placement Level) bool {
	if target == Unknown {
		return false
	}

	if placement == PreA0 {
		return target == PreA0
	}

	if target == PreA0 || target == A0 {
		return true
	}

	if placement >= target {
		return true
	}

	prev := target.Prev()
	ids := idx.LessonIDs(prev)
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if lessons[id].State != progress.LessonMastered {
			return false
		}
	}
	return true
}

// IsPreA0Completed reports whether every PreA0 lesson is mastered.
// A catalog without PreA0 lessons counts as completed.
func IsPreA0Completed(idx LessonIndex, lessons map[string]progress.LessonRecord) bool {
	for _, id := range idx.LessonIDs(PreA0) {
		if lessons[id].State != progress.LessonMastered {
			return false
		}
	}
	return true
}
