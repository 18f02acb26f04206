// Package learner holds the cross-session learner profile and the
// gamification ledger that session commits feed.
package learner

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seralk/lingua/internal/kvstore"
	"github.com/seralk/lingua/internal/level"
)

const profileKey = kvstore.Namespace + "profile"

// Stats aggregates lifetime learning counters shown on the profile.
type Stats struct {
	WordsMastered         int `json:"words_mastered"`
	SentencesSpoken       int `json:"sentences_spoken"`
	GrammarPointsMastered int `json:"grammar_points_mastered"`
}

// Profile is the learner's identity and durable cross-session state. The
// core reads Placement and mutates XP, Streak and LastActiveAt through the
// ledger; everything else belongs to the caller.
type Profile struct {
	Name         string      `json:"name"`
	Placement    level.Level `json:"placement"`
	XP           int         `json:"xp"`
	Streak       int         `json:"streak"`
	LastActiveAt time.Time   `json:"last_active_at"`
	Stats        Stats       `json:"stats"`
	Badges       []string    `json:"badges,omitempty"`
}

// Profiles persists the learner profile through an injected KV handle.
type Profiles struct {
	kv  kvstore.KV
	log *zap.Logger
}

// NewProfiles creates a profile store. A nil logger falls back to a no-op.
func NewProfiles(kv kvstore.KV, log *zap.Logger) *Profiles {
	if log == nil {
		log = zap.NewNop()
	}
	return &Profiles{kv: kv, log: log}
}

// Load returns the stored profile, or nil if none exists. A malformed blob
// is logged and treated as absent.
func (p *Profiles) Load() (*Profile, kvstore.LoadStatus) {
	raw, ok, err := p.kv.Get(profileKey)
	if err != nil {
		p.log.Warn("profile load failed", zap.Error(err))
		return nil, kvstore.LoadMalformed
	}
	if !ok {
		return nil, kvstore.LoadEmpty
	}

	var prof Profile
	if err := json.Unmarshal(raw, &prof); err != nil {
		p.log.Warn("profile blob malformed, treating as absent", zap.Error(err))
		return nil, kvstore.LoadMalformed
	}
	return &prof, kvstore.LoadOK
}

// Save persists the profile, replacing the stored one.
func (p *Profiles) Save(prof *Profile) error {
	raw, err := json.Marshal(prof)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return p.kv.Put(profileKey, raw)
}
