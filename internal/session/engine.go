package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seralk/lingua/internal/catalog"
	"github.com/seralk/lingua/internal/learner"
	"github.com/seralk/lingua/internal/progress"
	"github.com/seralk/lingua/internal/review"
)

// XPPerCorrect is the fixed award for each correct answer.
const XPPerCorrect = 10

// Result is returned from every Submit call.
type Result struct {
	IsCorrect bool
	Feedback  string
	XPAwarded int
	ItemState ItemState
	// Terminal marks the no-op result returned once the session is
	// exhausted; nothing was evaluated or persisted.
	Terminal bool
}

// StartOptions configures Start. LessonID is required for ModeNewLesson
// and ignored for ModeReview; Limit caps the review queue (default 20).
type StartOptions struct {
	LessonID string
	Mode     Mode
	Limit    int
}

// Engine orchestrates sessions over injected collaborators. It never
// panics or surfaces errors across the session boundary: failed lookups
// degrade to empty or placeholder item lists the caller can check.
type Engine struct {
	catalog   *catalog.Catalog
	progress  *progress.Store
	scheduler *review.Scheduler
	ledger    *learner.Ledger
	log       *zap.Logger
}

// NewEngine wires a session engine. A nil logger falls back to a no-op.
func NewEngine(cat *catalog.Catalog, prog *progress.Store, sched *review.Scheduler, ledger *learner.Ledger, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{catalog: cat, progress: prog, scheduler: sched, ledger: ledger, log: log}
}

// Start builds a session for the given content kind and options.
//
// ModeNewLesson wraps the lesson's drills in catalog order; an unknown
// lesson id yields a session with no items, which the caller must check
// for. ModeReview pulls the weakest recorded drills; an empty review queue
// is a valid terminal state, not an error. Any other mode falls back to a
// single placeholder item.
func (e *Engine) Start(kind Kind, opts StartOptions, now time.Time) *LearningSession {
	s := &LearningSession{
		ID:   uuid.New().String(),
		Kind: kind,
		Mode: opts.Mode,
	}

	switch opts.Mode {
	case ModeNewLesson:
		lesson, ok := e.catalog.Lesson(opts.LessonID)
		if !ok {
			e.log.Warn("unknown lesson at session start", zap.String("lesson_id", opts.LessonID))
			return s
		}
		s.LessonID = lesson.ID
		for _, d := range lesson.Drills {
			s.Items = append(s.Items, Item{DrillID: d.ID, Content: d.Content, State: ItemNew})
		}
		e.markLessonStarted(lesson, now)

	case ModeReview:
		for _, id := range e.scheduler.WeakDrillIDs(now, opts.Limit) {
			d, ok := e.catalog.Drill(id)
			if !ok {
				// Performance records outlive catalog rotations.
				e.log.Warn("weak drill missing from catalog", zap.String("drill_id", id))
				continue
			}
			s.Items = append(s.Items, Item{DrillID: d.ID, Content: d.Content, State: ItemReview})
		}

	default:
		e.log.Warn("unsupported session mode, serving placeholder",
			zap.String("kind", string(kind)), zap.String("mode", string(opts.Mode)))
		s.Items = []Item{placeholderItem()}
	}

	return s
}

// CurrentItem returns the item under the cursor, or ok=false once the
// session is exhausted. Pure; no side effects.
func (e *Engine) CurrentItem(s *LearningSession) (Item, bool) {
	if s.Exhausted() {
		return Item{}, false
	}
	return s.Items[s.Index], true
}

// Submit evaluates answer against the current item, updates the session
// stats and item state, persists the drill outcome, and advances the
// cursor. Submitting past the end returns a terminal no-op result; the
// session is left untouched. The updated session is returned alongside
// the result.
func (e *Engine) Submit(s *LearningSession, answer []string, now time.Time) (Result, *LearningSession) {
	if s.Exhausted() {
		return Result{Terminal: true, Feedback: "Session complete."}, s
	}

	item := &s.Items[s.Index]
	correct := Evaluate(item.Content, answer)

	res := Result{IsCorrect: correct}
	if correct {
		s.Stats.Correct++
		s.Stats.XPGained += XPPerCorrect
		item.State = ItemMastered
		res.XPAwarded = XPPerCorrect
		res.Feedback = "Correct!"
	} else {
		s.Stats.Wrong++
		item.State = ItemLearning
		res.Feedback = fmt.Sprintf("Not quite — the answer is %q.", expectedText(item.Content))
	}
	if expl := explanationText(item.Content); expl != "" {
		res.Feedback += " " + expl
	}
	res.ItemState = item.State

	if item.DrillID != "" {
		if err := e.progress.RecordDrillResult(item.DrillID, correct, now); err != nil {
			e.log.Warn("record drill result failed",
				zap.String("drill_id", item.DrillID), zap.Error(err))
		}
	}

	s.Index++
	return res, s
}

// Commit finalizes the session: the lesson record is brought up to date,
// and any earned XP is applied to the ledger together with the daily
// streak update. Returns the refreshed profile, or nil if none exists.
// A second commit on the same session returns the profile without
// re-applying anything.
func (e *Engine) Commit(s *LearningSession, now time.Time) (*learner.Profile, error) {
	if s.committed {
		return e.ledger.Current(), nil
	}
	s.committed = true

	e.finalizeLesson(s, now)

	if s.Stats.XPGained == 0 {
		return e.ledger.Current(), nil
	}

	if _, err := e.ledger.AddXP(s.Stats.XPGained); err != nil {
		return nil, fmt.Errorf("commit xp: %w", err)
	}
	prof, err := e.ledger.RecordActivity(now)
	if err != nil {
		return nil, fmt.Errorf("commit streak: %w", err)
	}
	return prof, nil
}

// markLessonStarted moves the lesson to in_progress and pins its drill
// count when a new-lesson session begins.
func (e *Engine) markLessonStarted(lesson *catalog.Lesson, now time.Time) {
	lessons, _ := e.progress.Lessons()

	total := len(lesson.Drills)
	patch := progress.LessonPatch{TotalDrills: &total}
	if lessons[lesson.ID].State != progress.LessonMastered {
		st := progress.LessonInProgress
		patch.State = &st
	}
	progress.UpdateLessonProgress(lessons, lesson.ID, patch, now)

	if err := e.progress.SaveLessons(lessons); err != nil {
		e.log.Warn("save lesson progress failed", zap.String("lesson_id", lesson.ID), zap.Error(err))
	}
}

// finalizeLesson folds the session outcome into the lesson record: the
// completed-drill count, the score percentage, and the mastered state once
// every drill in the lesson has been answered correctly.
func (e *Engine) finalizeLesson(s *LearningSession, now time.Time) {
	if s.Mode != ModeNewLesson || s.LessonID == "" || len(s.Items) == 0 {
		return
	}

	lessons, _ := e.progress.Lessons()

	completed := s.Stats.Correct
	score := 100 * float64(s.Stats.Correct) / float64(len(s.Items))
	patch := progress.LessonPatch{
		CompletedDrills: &completed,
		LastScorePct:    &score,
	}
	if s.Stats.Correct == len(s.Items) {
		st := progress.LessonMastered
		patch.State = &st
	}
	progress.UpdateLessonProgress(lessons, s.LessonID, patch, now)

	if err := e.progress.SaveLessons(lessons); err != nil {
		e.log.Warn("save lesson progress failed", zap.String("lesson_id", s.LessonID), zap.Error(err))
	}
}

// placeholderItem is the degenerate fallback for unsupported kind/mode
// combinations. It carries no drill id, so nothing about it persists.
func placeholderItem() Item {
	return Item{
		Content: catalog.Content{
			Kind: catalog.KindGrammar,
			Grammar: &catalog.GrammarDrill{
				Type:   catalog.GrammarFillBlank,
				Prompt: "No practice content is available for this selection.",
				Answer: []string{"ok"},
			},
		},
		State: ItemNew,
	}
}
