package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seralk/lingua/internal/session"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Practice your weakest drills",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		ensureProfile(svc)
		limit, _ := cmd.Flags().GetInt("limit")

		sess := svc.engine.Start(session.KindGrammar, session.StartOptions{
			Mode:  session.ModeReview,
			Limit: limit,
		}, time.Now())
		if len(sess.Items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to review — no drills need extra practice right now.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Review: %d drill(s) queued, weakest first.\n", len(sess.Items))
		return runSession(svc, sess, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	reviewCmd.Flags().Int("limit", 0, "Maximum drills per review session (default 20)")
}
