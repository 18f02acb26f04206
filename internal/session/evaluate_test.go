package session

import (
	"testing"

	"github.com/seralk/lingua/internal/catalog"
)

func grammarDrill(typ catalog.GrammarType, answer ...string) catalog.Content {
	return catalog.Content{
		Kind:    catalog.KindGrammar,
		Grammar: &catalog.GrammarDrill{Type: typ, Prompt: "p", Answer: answer},
	}
}

func vocabCard(translation string) catalog.Content {
	return catalog.Content{
		Kind:  catalog.KindVocab,
		Vocab: &catalog.VocabCard{Word: "w", Translation: translation},
	}
}

func TestEvaluateNormalization(t *testing.T) {
	c := grammarDrill(catalog.GrammarFillBlank, "buenos días")

	tests := []struct {
		name   string
		answer []string
		want   bool
	}{
		{"exact", []string{"buenos días"}, true},
		{"case differs", []string{"Buenos Días"}, true},
		{"surrounding whitespace", []string{"  buenos días  "}, true},
		{"internal whitespace run", []string{"buenos   días"}, true},
		{"wrong word", []string{"buenas noches"}, false},
		{"empty submission", []string{""}, false},
		{"no submission", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(c, tt.answer); got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestEvaluateReorderRequiresExactSequence(t *testing.T) {
	c := grammarDrill(catalog.GrammarReorder, "la", "casa", "está", "aquí")

	if !Evaluate(c, []string{"la", "casa", "está", "aquí"}) {
		t.Error("exact sequence should pass")
	}
	if !Evaluate(c, []string{"La", "Casa", "ESTÁ", " aquí "}) {
		t.Error("normalization applies per word sequence")
	}
	// Same multiset, different order: must fail.
	if Evaluate(c, []string{"casa", "la", "está", "aquí"}) {
		t.Error("reordered words should not pass")
	}
	if Evaluate(c, []string{"la", "casa", "está"}) {
		t.Error("missing word should not pass")
	}
}

func TestEvaluateSingleValueUsesFirstElement(t *testing.T) {
	// Defensive shape handling: sequences on single-value drills compare
	// first elements only.
	c := grammarDrill(catalog.GrammarMultipleChoice, "soy", "ignored-tail")

	if !Evaluate(c, []string{"soy", "estoy"}) {
		t.Error("first element match should pass")
	}
	if Evaluate(c, []string{"estoy", "soy"}) {
		t.Error("first element mismatch should fail")
	}
}

func TestEvaluateVocabComparesTranslation(t *testing.T) {
	c := vocabCard("hello")

	if !Evaluate(c, []string{" Hello "}) {
		t.Error("normalized translation should pass")
	}
	if Evaluate(c, []string{"goodbye"}) {
		t.Error("wrong translation should fail")
	}
}

func TestEvaluateMalformedContent(t *testing.T) {
	if Evaluate(catalog.Content{Kind: catalog.KindGrammar}, []string{"x"}) {
		t.Error("grammar content without payload should fail")
	}
	if Evaluate(catalog.Content{Kind: "audio"}, []string{"x"}) {
		t.Error("unknown kind should fail")
	}
	if Evaluate(grammarDrill(catalog.GrammarFillBlank), []string{""}) {
		t.Error("empty expected answer should never pass")
	}
}
