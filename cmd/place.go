package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seralk/lingua/internal/level"
)

var placeCmd = &cobra.Command{
	Use:   "place <level>",
	Short: "Set your placement level (prea0, a0, a1, a2, b1, b2, c1, c2)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lvl, ok := parseLevelArg(args[0])
		if !ok {
			return fmt.Errorf("unknown level %q: expected one of %s", args[0], levelNames())
		}

		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		prof := ensureProfile(svc)
		prof.Placement = lvl
		if err := svc.profiles.Save(prof); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Placement set to %s.\n", lvl)
		if lvl == level.PreA0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Foundations first: higher levels unlock once every PreA0 lesson is mastered.")
		}
		return nil
	},
}

// parseLevelArg matches a band name case-insensitively.
func parseLevelArg(s string) (level.Level, bool) {
	for _, l := range level.AllLevels() {
		if strings.EqualFold(l.String(), s) {
			return l, true
		}
	}
	return level.Unknown, false
}

func levelNames() string {
	names := make([]string, 0, len(level.AllLevels()))
	for _, l := range level.AllLevels() {
		names = append(names, l.String())
	}
	return strings.Join(names, ", ")
}
