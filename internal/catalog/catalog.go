package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/seralk/lingua/internal/level"
)

// Lesson is an ordered group of drills inside a proficiency band.
type Lesson struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Level  level.Level `json:"level"`
	Drills []Drill     `json:"drills"`
}

// Catalog indexes lessons by id and band. Lookup only; immutable once built.
type Catalog struct {
	lessons []Lesson
	byID    map[string]*Lesson
	byDrill map[string]*Drill
	byLevel map[level.Level][]string
}

//go:embed data/catalog.json
var builtinJSON []byte

// Builtin parses the catalog shipped with the binary.
func Builtin() (*Catalog, error) {
	return Load(builtinJSON)
}

// Load validates raw JSON against the catalog schema and builds the
// indexed catalog. Duplicate lesson or drill ids are rejected.
func Load(raw []byte) (*Catalog, error) {
	if err := validateCatalog(raw); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	var doc struct {
		Lessons []Lesson `json:"lessons"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		lessons: doc.Lessons,
		byID:    make(map[string]*Lesson, len(doc.Lessons)),
		byDrill: make(map[string]*Drill),
		byLevel: make(map[level.Level][]string),
	}
	for i := range c.lessons {
		l := &c.lessons[i]
		if _, dup := c.byID[l.ID]; dup {
			return nil, fmt.Errorf("duplicate lesson id %q", l.ID)
		}
		c.byID[l.ID] = l
		c.byLevel[l.Level] = append(c.byLevel[l.Level], l.ID)
		for j := range l.Drills {
			d := &l.Drills[j]
			if _, dup := c.byDrill[d.ID]; dup {
				return nil, fmt.Errorf("duplicate drill id %q", d.ID)
			}
			c.byDrill[d.ID] = d
		}
	}
	return c, nil
}

// Lesson returns the lesson for id, or ok=false if unknown.
func (c *Catalog) Lesson(id string) (*Lesson, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// Drill returns the drill for id, or ok=false if unknown.
func (c *Catalog) Drill(id string) (*Drill, bool) {
	d, ok := c.byDrill[id]
	return d, ok
}

// LessonIDs returns the lesson ids of a band in catalog order.
// Implements the level gate's LessonIndex.
func (c *Catalog) LessonIDs(l level.Level) []string {
	ids := c.byLevel[l]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Lessons returns every lesson in catalog order.
func (c *Catalog) Lessons() []Lesson {
	out := make([]Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}
