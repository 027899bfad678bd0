package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/iq360/internal/levels"
	"github.com/spf13/cobra"
)

// levelView is the structured form of a catalog entry.
type levelView struct {
	Index    int    `json:"index" yaml:"index"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	Pillar   string `json:"pillar" yaml:"pillar"`
	Puzzle   string `json:"puzzle" yaml:"puzzle"`
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the five levels and their puzzles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		all := levels.All()
		out := cmd.OutOrStdout()

		if format != formatText {
			views := make([]levelView, len(all))
			for i, l := range all {
				views[i] = levelView{l.Index, l.Title, l.Category, levels.Pillars[i], l.Puzzle}
			}
			return writeStructured(out, format, views)
		}

		for i, l := range all {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%d. %s  [%s · %s]\n", l.Index, l.Title, l.Category, levels.Pillars[i])
			for _, line := range strings.Split(l.Puzzle, "\n") {
				fmt.Fprintf(out, "   %s\n", line)
			}
		}
		return nil
	},
}

func init() {
	addFormatFlag(levelsCmd)
}
