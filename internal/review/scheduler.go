// Package review ranks previously missed drills for resurfacing. The
// heuristic is a coarse spaced-repetition proxy: an error-rate score that
// never fully decays, scaled by how recently the drill was last answered so
// fresh misses sink in the queue and stale ones float back up.
package review

import (
	"sort"
	"time"

	"github.com/seralk/lingua/internal/progress"
)

// DefaultLimit is the review queue size when the caller passes limit <= 0.
const DefaultLimit = 20

// Base-score floor: every drill with a recorded miss stays eligible forever.
const minBaseScore = 0.1

// Recency multipliers, keyed by time since the last answer.
const (
	recencyUnknown = 1.5 // never answered or timestamp lost: treat as stale
	recencyFresh   = 0.5 // under 2h: just practiced, deprioritize
	recencyRecent  = 0.8 // under a day
	recencyNeutral = 1.0 // one to three days
	recencyAtRisk  = 1.2 // over three days: at risk of being forgotten
)

// Scheduler ranks weak drills out of the progress store's performance map.
type Scheduler struct {
	progress *progress.Store
}

// NewScheduler creates a scheduler over the given progress store.
func NewScheduler(p *progress.Store) *Scheduler {
	return &Scheduler{progress: p}
}

// WeakDrillIDs returns up to limit drill ids most in need of review,
// strongest candidates first. Drills without a recorded miss never appear.
func (s *Scheduler) WeakDrillIDs(now time.Time, limit int) []string {
	drills, _ := s.progress.Drills()
	return Rank(drills, now, limit)
}

// Rank scores and orders the weak drills in the given performance map.
// Ties break by drill id so the ordering is deterministic.
func Rank(drills map[string]progress.DrillRecord, now time.Time, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	type candidate struct {
		id    string
		score float64
	}
	var candidates []candidate
	for id, rec := range drills {
		if rec.WrongCount == 0 {
			continue
		}
		base := float64(rec.WrongCount) - 0.3*float64(rec.CorrectCount)
		if base < minBaseScore {
			base = minBaseScore
		}
		candidates = append(candidates, candidate{
			id:    id,
			score: base * recencyMultiplier(rec.LastAnswerAt, now),
		})
	}

	// Fix the pre-sort order by id, then stable-sort by score, so equal
	// scores keep a reproducible order regardless of map iteration.
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].id < candidates[j].id })
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	return ids
}

func recencyMultiplier(lastAnswerAt, now time.Time) float64 {
	if lastAnswerAt.IsZero() {
		return recencyUnknown
	}
	since := now.Sub(lastAnswerAt)
	switch {
	case since < 2*time.Hour:
		return recencyFresh
	case since < 24*time.Hour:
		return recencyRecent
	case since > 72*time.Hour:
		return recencyAtRisk
	default:
		return recencyNeutral
	}
}
