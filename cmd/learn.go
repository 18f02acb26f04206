package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seralk/lingua/internal/learner"
	"github.com/seralk/lingua/internal/level"
	"github.com/seralk/lingua/internal/session"
)

var learnCmd = &cobra.Command{
	Use:   "learn <lesson-id>",
	Short: "Start a lesson session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		lesson, ok := svc.catalog.Lesson(args[0])
		if !ok {
			return fmt.Errorf("unknown lesson %q (run `lingua stats` to list lessons)", args[0])
		}

		prof := ensureProfile(svc)
		lessons, _ := svc.progress.Lessons()
		if !level.IsUnlocked(svc.catalog, lesson.Level, lessons, prof.Placement) {
			return fmt.Errorf("level %s is still locked: master every %s lesson first, or set your placement with `lingua place`",
				lesson.Level, lesson.Level.Prev())
		}

		sess := svc.engine.Start(kindFor(lesson), session.StartOptions{
			LessonID: lesson.ID,
			Mode:     session.ModeNewLesson,
		}, time.Now())
		if len(sess.Items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "This lesson has no drills.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Lesson: %s (%s, %d drills)\n", lesson.Title, lesson.Level, len(sess.Items))
		return runSession(svc, sess, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// ensureProfile loads the learner profile, creating a fresh one on first
// use so XP and streak have somewhere to land.
func ensureProfile(svc *services) *learner.Profile {
	if prof := svc.ledger.Current(); prof != nil {
		return prof
	}
	prof := &learner.Profile{Placement: level.Unknown}
	if err := svc.profiles.Save(prof); err != nil {
		svc.log.Warn("create profile failed", zap.Error(err))
	}
	return prof
}
