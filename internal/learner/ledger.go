package learner

import "time"

// Ledger applies XP and daily-streak updates to the stored profile. It is
// the only writer of XP, Streak and LastActiveAt.
type Ledger struct {
	profiles *Profiles
}

// NewLedger creates a ledger over the given profile store.
func NewLedger(profiles *Profiles) *Ledger {
	return &Ledger{profiles: profiles}
}

// Current returns the stored profile without applying any update, or nil
// if none exists.
func (l *Ledger) Current() *Profile {
	prof, _ := l.profiles.Load()
	return prof
}

// AddXP adds amount to the learner's experience points and persists the
// profile. XP never decreases: amounts <= 0 leave the profile untouched.
// Returns nil if no profile exists yet.
func (l *Ledger) AddXP(amount int) (*Profile, error) {
	prof, _ := l.profiles.Load()
	if prof == nil {
		return nil, nil
	}
	if amount <= 0 {
		return prof, nil
	}

	prof.XP += amount
	if err := l.profiles.Save(prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// RecordActivity updates the daily streak for activity at now and stamps
// LastActiveAt. Day boundaries are local calendar dates, so repeated
// activity on one day never double-increments. Returns nil if no profile
// exists yet.
func (l *Ledger) RecordActivity(now time.Time) (*Profile, error) {
	prof, _ := l.profiles.Load()
	if prof == nil {
		return nil, nil
	}

	switch {
	case prof.LastActiveAt.IsZero():
		prof.Streak = 1
	case calendarDaysBetween(prof.LastActiveAt, now) == 0:
		// Same day: streak unchanged, timestamp still refreshed below.
	case calendarDaysBetween(prof.LastActiveAt, now) == 1:
		prof.Streak++
	default:
		prof.Streak = 1
	}
	prof.LastActiveAt = now

	if err := l.profiles.Save(prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// calendarDaysBetween counts whole calendar days from a's date to b's date
// in a's location, ignoring clock time.
func calendarDaysBetween(a, b time.Time) int {
	b = b.In(a.Location())
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, a.Location())
	return int(db.Sub(da) / (24 * time.Hour))
}
