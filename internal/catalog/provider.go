package catalog

import (
	"context"

	"github.com/seralk/lingua/internal/level"
)

// Provider produces fresh drill content for a topic at a level. It is the
// boundary for generative content services; the core only consumes drills
// shaped like the catalog's own types and never depends on how they are
// produced. Implementations are expected to block until content is ready.
type Provider interface {
	GenerateDrills(ctx context.Context, topic string, lvl level.Level, count int) ([]Drill, error)
	GenerateVocab(ctx context.Context, topic string, lvl level.Level, count int) ([]VocabCard, error)
}
