package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/seralk/lingua/internal/catalog"
	"github.com/seralk/lingua/internal/session"
)

// runSession drives a line-oriented answer loop over the session's items
// and commits the outcome. Ending input (EOF) abandons the remaining items
// but still commits whatever was earned so far.
func runSession(svc *services, sess *session.LearningSession, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	total := len(sess.Items)

	for {
		item, ok := svc.engine.CurrentItem(sess)
		if !ok {
			break
		}

		fmt.Fprintf(out, "\n[%d/%d] %s\n", sess.Index+1, total, promptText(item.Content))
		for i, choice := range choicesOf(item.Content) {
			fmt.Fprintf(out, "  %d) %s\n", i+1, choice)
		}
		fmt.Fprint(out, "> ")

		if !sc.Scan() {
			break
		}
		answer := parseAnswer(item.Content, sc.Text())

		res, _ := svc.engine.Submit(sess, answer, time.Now())
		if res.XPAwarded > 0 {
			fmt.Fprintf(out, "%s (+%d XP)\n", res.Feedback, res.XPAwarded)
		} else {
			fmt.Fprintln(out, res.Feedback)
		}
	}

	prof, err := svc.engine.Commit(sess, time.Now())
	if err != nil {
		return fmt.Errorf("commit session: %w", err)
	}

	fmt.Fprintf(out, "\nDone: %d correct, %d wrong, %d XP earned.\n",
		sess.Stats.Correct, sess.Stats.Wrong, sess.Stats.XPGained)
	if prof != nil {
		fmt.Fprintf(out, "Total XP: %d  Streak: %d day(s)\n", prof.XP, prof.Streak)
	}
	return sc.Err()
}

// promptText renders the question line for an item.
func promptText(c catalog.Content) string {
	switch c.Kind {
	case catalog.KindGrammar:
		if c.Grammar != nil {
			return c.Grammar.Prompt
		}
	case catalog.KindVocab:
		if c.Vocab != nil {
			if c.Vocab.Example != "" {
				return fmt.Sprintf("Translate %q (as in: %s)", c.Vocab.Word, c.Vocab.Example)
			}
			return fmt.Sprintf("Translate %q", c.Vocab.Word)
		}
	}
	return "(no prompt)"
}

// choicesOf returns the selectable options, if the drill carries any.
func choicesOf(c catalog.Content) []string {
	if c.Kind == catalog.KindGrammar && c.Grammar != nil {
		return c.Grammar.Choices
	}
	return nil
}

// parseAnswer turns one input line into the answer shape the drill expects.
// Reorder drills take a whitespace-separated word sequence; on drills with
// choices, a bare number picks that choice.
func parseAnswer(c catalog.Content, line string) []string {
	line = strings.TrimSpace(line)

	if c.Kind == catalog.KindGrammar && c.Grammar != nil {
		if c.Grammar.Type == catalog.GrammarReorder {
			return strings.Fields(line)
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(c.Grammar.Choices) {
			return []string{c.Grammar.Choices[n-1]}
		}
	}
	return []string{line}
}

// kindFor picks the session's content family from the lesson's leading
// drill. Mixed lessons count as grammar.
func kindFor(lesson *catalog.Lesson) session.Kind {
	if len(lesson.Drills) > 0 && lesson.Drills[0].Content.Kind == catalog.KindVocab {
		return session.KindVocabulary
	}
	return session.KindGrammar
}
