package review

import (
	"testing"
	"time"

	"github.com/seralk/lingua/internal/kvstore"
	"github.com/seralk/lingua/internal/progress"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func rec(correct, wrong int, lastAnswer time.Time) progress.DrillRecord {
	return progress.DrillRecord{CorrectCount: correct, WrongCount: wrong, LastAnswerAt: lastAnswer}
}

func TestRank_ExcludesDrillsWithoutMisses(t *testing.T) {
	drills := map[string]progress.DrillRecord{
		"clean":  rec(10, 0, testNow.Add(-48*time.Hour)),
		"missed": rec(0, 1, testNow.Add(-48*time.Hour)),
	}

	got := Rank(drills, testNow, 0)
	if len(got) != 1 || got[0] != "missed" {
		t.Errorf("Rank = %v, want [missed]", got)
	}
}

func TestRank_BaseScoreFloorKeepsDrillEligible(t *testing.T) {
	// Heavy correct history would push the raw score negative; the floor
	// keeps the drill in the queue.
	drills := map[string]progress.DrillRecord{
		"old-miss": rec(50, 1, testNow.Add(-48*time.Hour)),
	}

	got := Rank(drills, testNow, 0)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
}

func TestRank_FreshMissRanksBelowStaleMiss(t *testing.T) {
	drills := map[string]progress.DrillRecord{
		"fresh": rec(2, 3, testNow.Add(-30*time.Minute)), // 0.5 multiplier
		"stale": rec(2, 3, testNow.Add(-5*24*time.Hour)), // 1.2 multiplier
	}

	got := Rank(drills, testNow, 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0] != "stale" || got[1] != "fresh" {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestRank_UnknownTimestampRanksHighest(t *testing.T) {
	drills := map[string]progress.DrillRecord{
		"no-timestamp": rec(2, 3, time.Time{}),                // 1.5
		"at-risk":      rec(2, 3, testNow.Add(-96*time.Hour)), // 1.2
		"neutral":      rec(2, 3, testNow.Add(-36*time.Hour)), // 1.0
	}

	got := Rank(drills, testNow, 0)
	want := []string{"no-timestamp", "at-risk", "neutral"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Rank = %v, want %v", got, want)
		}
	}
}

func TestRank_TiesBreakByDrillID(t *testing.T) {
	last := testNow.Add(-36 * time.Hour)
	drills := map[string]progress.DrillRecord{
		"drill-c": rec(1, 2, last),
		"drill-a": rec(1, 2, last),
		"drill-b": rec(1, 2, last),
	}

	for i := 0; i < 20; i++ {
		got := Rank(drills, testNow, 0)
		if got[0] != "drill-a" || got[1] != "drill-b" || got[2] != "drill-c" {
			t.Fatalf("iteration %d: unstable order %v", i, got)
		}
	}
}

func TestRank_TruncatesToLimit(t *testing.T) {
	drills := map[string]progress.DrillRecord{
		"a": rec(0, 5, time.Time{}),
		"b": rec(0, 4, time.Time{}),
		"c": rec(0, 3, time.Time{}),
	}

	got := Rank(drills, testNow, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	if got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestRank_MoreWrongAnswersRankHigher(t *testing.T) {
	last := testNow.Add(-36 * time.Hour)
	drills := map[string]progress.DrillRecord{
		"often-missed":  rec(1, 6, last),
		"rarely-missed": rec(6, 1, last),
	}

	got := Rank(drills, testNow, 0)
	if got[0] != "often-missed" {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestWeakDrillIDs_ReadsFromStore(t *testing.T) {
	st := progress.NewStore(kvstore.NewMemoryKV(), nil)
	if err := st.RecordDrillResult("d1", false, testNow.Add(-5*24*time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := st.RecordDrillResult("d2", true, testNow.Add(-5*24*time.Hour)); err != nil {
		t.Fatal(err)
	}

	s := NewScheduler(st)
	got := s.WeakDrillIDs(testNow, 0)
	if len(got) != 1 || got[0] != "d1" {
		t.Errorf("WeakDrillIDs = %v, want [d1]", got)
	}
}
