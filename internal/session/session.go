// Package session runs one bounded pass over an ordered set of drills:
// serve the current item, evaluate the submitted answer, keep running
// stats, and crystallize the results into durable learner state on commit.
package session

import "github.com/seralk/lingua/internal/catalog"

// Kind is the content family a session drills.
type Kind string

const (
	KindGrammar    Kind = "grammar"
	KindVocabulary Kind = "vocabulary"
)

// Mode selects how the session's item list is built.
type Mode string

const (
	ModeNewLesson Mode = "new_lesson"
	ModeReview    Mode = "review"
	ModePlacement Mode = "placement"
)

// ItemState is the per-item mastery tag mutated during the session.
type ItemState string

const (
	ItemNew      ItemState = "new"
	ItemLearning ItemState = "learning"
	ItemReview   ItemState = "review"
	ItemMastered ItemState = "mastered"
)

// Item is one session-scoped drill. DrillID is empty for the placeholder
// item, which is never written to the performance records.
type Item struct {
	DrillID string
	Content catalog.Content
	State   ItemState
}

// Stats accumulates results while the session runs.
type Stats struct {
	Correct  int
	Wrong    int
	XPGained int
}

// LearningSession is ephemeral session state. Only its effects persist:
// drill outcomes are written as answers land, profile deltas apply once at
// commit. Item order is fixed at creation; the cursor only advances.
type LearningSession struct {
	ID       string
	Kind     Kind
	Mode     Mode
	LessonID string
	Items    []Item
	Index    int
	Stats    Stats

	committed bool
}

// Exhausted reports whether the cursor has moved past the last item.
func (s *LearningSession) Exhausted() bool {
	return s.Index >= len(s.Items)
}

// Committed reports whether Commit has already been applied.
func (s *LearningSession) Committed() bool {
	return s.committed
}
