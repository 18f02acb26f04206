package learner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seralk/lingua/internal/kvstore"
	"github.com/seralk/lingua/internal/level"
)

func newTestLedger(t *testing.T, prof *Profile) (*Ledger, *Profiles) {
	t.Helper()
	profiles := NewProfiles(kvstore.NewMemoryKV(), nil)
	if prof != nil {
		require.NoError(t, profiles.Save(prof))
	}
	return NewLedger(profiles), profiles
}

func TestAddXPAccumulates(t *testing.T) {
	ledger, _ := newTestLedger(t, &Profile{Name: "Mira", XP: 30})

	prof, err := ledger.AddXP(20)
	require.NoError(t, err)
	require.Equal(t, 50, prof.XP)

	prof, err = ledger.AddXP(10)
	require.NoError(t, err)
	require.Equal(t, 60, prof.XP)
}

func TestAddXPWithoutProfile(t *testing.T) {
	ledger, _ := newTestLedger(t, nil)

	prof, err := ledger.AddXP(20)
	require.NoError(t, err)
	require.Nil(t, prof)
}

func TestAddXPIgnoresNonPositiveAmounts(t *testing.T) {
	ledger, profiles := newTestLedger(t, &Profile{XP: 30})

	prof, err := ledger.AddXP(0)
	require.NoError(t, err)
	require.Equal(t, 30, prof.XP)

	prof, err = ledger.AddXP(-5)
	require.NoError(t, err)
	require.Equal(t, 30, prof.XP)

	stored, status := profiles.Load()
	require.Equal(t, kvstore.LoadOK, status)
	require.Equal(t, 30, stored.XP)
}

func TestRecordActivityFirstEver(t *testing.T) {
	ledger, _ := newTestLedger(t, &Profile{})
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

	prof, err := ledger.RecordActivity(now)
	require.NoError(t, err)
	require.Equal(t, 1, prof.Streak)
	require.Equal(t, now, prof.LastActiveAt)
}

func TestRecordActivitySameDayKeepsStreak(t *testing.T) {
	morning := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	ledger, _ := newTestLedger(t, &Profile{Streak: 4, LastActiveAt: morning})

	evening := morning.Add(13 * time.Hour)
	prof, err := ledger.RecordActivity(evening)
	require.NoError(t, err)
	require.Equal(t, 4, prof.Streak)
	require.Equal(t, evening, prof.LastActiveAt, "timestamp refreshes even without a streak change")
}

func TestRecordActivityNextDayIncrements(t *testing.T) {
	// Late evening followed by early next morning: under 24 elapsed hours
	// but a calendar-day boundary was crossed.
	night := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	ledger, _ := newTestLedger(t, &Profile{Streak: 4, LastActiveAt: night})

	nextMorning := time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC)
	prof, err := ledger.RecordActivity(nextMorning)
	require.NoError(t, err)
	require.Equal(t, 5, prof.Streak)
}

func TestRecordActivityGapResetsToOne(t *testing.T) {
	dayN := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ledger, _ := newTestLedger(t, &Profile{Streak: 9, LastActiveAt: dayN})

	dayNPlus2 := dayN.AddDate(0, 0, 2)
	prof, err := ledger.RecordActivity(dayNPlus2)
	require.NoError(t, err)
	require.Equal(t, 1, prof.Streak)
}

func TestRecordActivityTwiceSameDay(t *testing.T) {
	ledger, _ := newTestLedger(t, &Profile{})
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	prof, err := ledger.RecordActivity(now)
	require.NoError(t, err)
	require.Equal(t, 1, prof.Streak)

	prof, err = ledger.RecordActivity(now.Add(2 * time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, prof.Streak)
}

func TestProfileRoundTrip(t *testing.T) {
	profiles := NewProfiles(kvstore.NewMemoryKV(), nil)
	want := &Profile{
		Name:         "Mira",
		Placement:    level.B1,
		XP:           420,
		Streak:       7,
		LastActiveAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Stats:        Stats{WordsMastered: 120, SentencesSpoken: 30, GrammarPointsMastered: 14},
		Badges:       []string{"first-lesson", "week-streak"},
	}
	require.NoError(t, profiles.Save(want))

	got, status := profiles.Load()
	require.Equal(t, kvstore.LoadOK, status)
	require.Equal(t, want, got)
}

func TestProfileMalformedTreatedAsAbsent(t *testing.T) {
	kv := kvstore.NewMemoryKV()
	require.NoError(t, kv.Put(profileKey, []byte("not json")))
	profiles := NewProfiles(kv, nil)

	prof, status := profiles.Load()
	require.Nil(t, prof)
	require.Equal(t, kvstore.LoadMalformed, status)
}
