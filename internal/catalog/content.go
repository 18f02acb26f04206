// Package catalog holds the read-only drill content the learning core is
// handed: levels of lessons, each an ordered list of drills. The core
// never writes here; progress lives in the progress store.
package catalog

// Kind discriminates the drill content union.
type Kind string

const (
	KindGrammar Kind = "grammar"
	KindVocab   Kind = "vocab"
)

// GrammarType is the interaction style of a grammar drill.
type GrammarType string

const (
	GrammarFillBlank      GrammarType = "fill_blank"
	GrammarMultipleChoice GrammarType = "multiple_choice"
	GrammarMatching       GrammarType = "matching"
	GrammarReorder        GrammarType = "reorder"
)

// GrammarDrill is a single grammar question. Answer holds the full word
// sequence for reorder drills and a single element for everything else.
type GrammarDrill struct {
	Type        GrammarType `json:"type"`
	Prompt      string      `json:"prompt"`
	Choices     []string    `json:"choices,omitempty"`
	Answer      []string    `json:"answer"`
	Explanation string      `json:"explanation,omitempty"`
}

// VocabCard is a vocabulary item drilled by translation.
type VocabCard struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Example     string `json:"example,omitempty"`
}

// Content is the tagged union of drill payloads. Exactly the variant named
// by Kind is non-nil.
type Content struct {
	Kind    Kind          `json:"kind"`
	Grammar *GrammarDrill `json:"grammar,omitempty"`
	Vocab   *VocabCard    `json:"vocab,omitempty"`
}

// Drill is one identified question inside a lesson.
type Drill struct {
	ID      string  `json:"id"`
	Content Content `json:"content"`
}
