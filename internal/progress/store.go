package progress

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seralk/lingua/internal/kvstore"
)

// Storage keys, namespaced under the application prefix.
const (
	lessonsKey = kvstore.Namespace + "progress:lessons"
	drillsKey  = kvstore.Namespace + "progress:drills"
)

// Store persists the lesson and drill maps through an injected KV handle.
type Store struct {
	kv  kvstore.KV
	log *zap.Logger
}

// NewStore creates a progress store. A nil logger falls back to a no-op.
func NewStore(kv kvstore.KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log}
}

// Lessons loads the full lesson-progress map. A missing blob yields an
// empty map with kvstore.LoadEmpty; a blob that fails to parse is logged and
// yields an empty map with kvstore.LoadMalformed. Neither is an error.
func (s *Store) Lessons() (map[string]LessonRecord, kvstore.LoadStatus) {
	return loadMap[LessonRecord](s, lessonsKey)
}

// SaveLessons writes the full lesson-progress map, replacing the stored one.
func (s *Store) SaveLessons(lessons map[string]LessonRecord) error {
	return s.saveMap(lessonsKey, lessons)
}

// Drills loads the full drill-performance map with the same degradation
// rules as Lessons.
func (s *Store) Drills() (map[string]DrillRecord, kvstore.LoadStatus) {
	return loadMap[DrillRecord](s, drillsKey)
}

// SaveDrills writes the full drill-performance map.
func (s *Store) SaveDrills(drills map[string]DrillRecord) error {
	return s.saveMap(drillsKey, drills)
}

// RecordDrillResult upserts the performance record for drillID,
// incrementing the matching counter and stamping the answer time.
func (s *Store) RecordDrillResult(drillID string, correct bool, now time.Time) error {
	drills, _ := s.Drills()

	rec := drills[drillID]
	if correct {
		rec.CorrectCount++
	} else {
		rec.WrongCount++
	}
	rec.LastAnswerAt = now
	drills[drillID] = rec

	return s.SaveDrills(drills)
}

// UpdateLessonProgress merges patch into the record for lessonID inside the
// given map, creating a default available record if absent, and stamps
// UpdatedAt. The map is mutated in place; the caller saves it back.
func UpdateLessonProgress(lessons map[string]LessonRecord, lessonID string, patch LessonPatch, now time.Time) {
	rec, ok := lessons[lessonID]
	if !ok {
		rec = LessonRecord{State: LessonAvailable}
	}
	if patch.State != nil {
		rec.State = *patch.State
	}
	if patch.CompletedDrills != nil {
		rec.CompletedDrills = *patch.CompletedDrills
	}
	if patch.TotalDrills != nil {
		rec.TotalDrills = *patch.TotalDrills
	}
	if patch.LastScorePct != nil {
		rec.LastScorePct = *patch.LastScorePct
	}
	rec.UpdatedAt = now
	lessons[lessonID] = rec
}

func loadMap[T any](s *Store, key string) (map[string]T, kvstore.LoadStatus) {
	out := make(map[string]T)

	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Warn("progress load failed", zap.String("key", key), zap.Error(err))
		return out, kvstore.LoadMalformed
	}
	if !ok {
		return out, kvstore.LoadEmpty
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn("progress blob malformed, starting empty",
			zap.String("key", key), zap.Error(err))
		return make(map[string]T), kvstore.LoadMalformed
	}
	return out, kvstore.LoadOK
}

func (s *Store) saveMap(key string, m any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return s.kv.Put(key, raw)
}
