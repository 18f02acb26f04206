package session

import (
	"strings"

	"github.com/seralk/lingua/internal/catalog"
)

// normalize trims, lower-cases and collapses internal whitespace runs to a
// single space, so formatting differences never fail a learner.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// firstOf guards against shape mismatches between stored answers and
// submissions: single-value drills compare only the first element.
func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Evaluate checks a submitted answer against the drill's expected solution.
//
// Reorder drills compare the full word sequence joined with single spaces,
// so the same words in a different order do not pass. Every other drill
// type compares a single normalized value. Unknown content never passes.
func Evaluate(c catalog.Content, answer []string) bool {
	switch c.Kind {
	case catalog.KindGrammar:
		g := c.Grammar
		if g == nil {
			return false
		}
		if g.Type == catalog.GrammarReorder {
			expected := normalize(strings.Join(g.Answer, " "))
			got := normalize(strings.Join(answer, " "))
			return expected != "" && expected == got
		}
		expected := normalize(firstOf(g.Answer))
		return expected != "" && expected == normalize(firstOf(answer))

	case catalog.KindVocab:
		v := c.Vocab
		if v == nil {
			return false
		}
		expected := normalize(v.Translation)
		return expected != "" && expected == normalize(firstOf(answer))

	default:
		return false
	}
}

// expectedText renders the drill's expected answer for feedback.
func expectedText(c catalog.Content) string {
	switch c.Kind {
	case catalog.KindGrammar:
		if c.Grammar != nil {
			return strings.Join(c.Grammar.Answer, " ")
		}
	case catalog.KindVocab:
		if c.Vocab != nil {
			return c.Vocab.Translation
		}
	}
	return ""
}

// explanationText returns the drill's explanation, if it carries one.
func explanationText(c catalog.Content) string {
	if c.Kind == catalog.KindGrammar && c.Grammar != nil {
		return c.Grammar.Explanation
	}
	return ""
}
