package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seralk/lingua/internal/level"
	"github.com/seralk/lingua/internal/progress"
	"github.com/seralk/lingua/internal/review"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress and profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()
		out := cmd.OutOrStdout()

		prof, _ := svc.profiles.Load()
		if prof == nil {
			fmt.Fprintln(out, "No profile yet — start with `lingua learn` or set a placement with `lingua place`.")
		} else {
			fmt.Fprintf(out, "Placement: %s  XP: %d  Streak: %d day(s)\n", prof.Placement, prof.XP, prof.Streak)
		}

		lessons, _ := svc.progress.Lessons()
		placement := level.Unknown
		if prof != nil {
			placement = prof.Placement
		}

		for _, lvl := range level.AllLevels() {
			ids := svc.catalog.LessonIDs(lvl)
			if len(ids) == 0 {
				continue
			}
			marker := "locked"
			if level.IsUnlocked(svc.catalog, lvl, lessons, placement) {
				marker = "open"
			}
			fmt.Fprintf(out, "\n%s (%s)\n", lvl, marker)
			for _, id := range ids {
				l, _ := svc.catalog.Lesson(id)
				rec := lessons[id]
				fmt.Fprintf(out, "  %-20s %s  %s\n", id, l.Title, lessonSummary(rec))
			}
		}

		if n := len(svc.scheduler.WeakDrillIDs(time.Now(), review.DefaultLimit)); n > 0 {
			fmt.Fprintf(out, "\n%d drill(s) waiting in review — run `lingua review`.\n", n)
		}

		if placement == level.PreA0 && level.IsPreA0Completed(svc.catalog, lessons) {
			fmt.Fprintln(out, "\nFoundations complete! Move up with `lingua place a0`.")
		}
		return nil
	},
}

// lessonSummary renders one lesson's stored state for the listing.
func lessonSummary(rec progress.LessonRecord) string {
	switch rec.State {
	case progress.LessonMastered:
		return fmt.Sprintf("[mastered, last score %.0f%%]", rec.LastScorePct)
	case progress.LessonInProgress:
		return fmt.Sprintf("[in progress, %d/%d drills]", rec.CompletedDrills, rec.TotalDrills)
	default:
		return "[not started]"
	}
}
