package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/iq360/internal/levels"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a single answer without the TUI",
	Long: `Score one answer for one level and print the result.

This is a stateless developer tool for checking prompt and model quality.
The answer comes from --answer or, when that is empty, from all of stdin.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Int("level", 1, "Level index (1-5)")
	evalCmd.Flags().String("answer", "", "Answer text (read from stdin when empty)")
	addFormatFlag(evalCmd)
}

// outcomeView is the structured form of an evaluation.
type outcomeView struct {
	Level            int    `json:"level" yaml:"level"`
	Title            string `json:"title" yaml:"title"`
	Score            int    `json:"score" yaml:"score"`
	IQSegment        string `json:"iqSegment" yaml:"iqSegment"`
	Trait            string `json:"personalityTrait" yaml:"personalityTrait"`
	CriticalThinking int    `json:"criticalThinkingRating" yaml:"criticalThinkingRating"`
	Feedback         string `json:"feedback" yaml:"feedback"`
	Model            string `json:"model" yaml:"model"`
}

func runEval(cmd *cobra.Command, args []string) error {
	index, _ := cmd.Flags().GetInt("level")
	answer, _ := cmd.Flags().GetString("answer")

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	level, err := levels.Get(index)
	if err != nil {
		return err
	}
	structured := format != formatText

	d, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	out := cmd.OutOrStdout()
	if !structured {
		fmt.Fprintf(out, "── Level %d: %s (%s) ──\n", level.Index, level.Title, level.Category)
		fmt.Fprintln(out, level.Puzzle)
	}

	if strings.TrimSpace(answer) == "" {
		if !structured {
			fmt.Fprint(out, "\nYour answer: ")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read answer: %w", err)
		}
		answer = strings.TrimSpace(string(data))
	}
	if strings.TrimSpace(answer) == "" {
		return fmt.Errorf("no answer given")
	}

	outcome, err := d.evaluator.Evaluate(cmd.Context(), level, answer)
	if err != nil {
		return err
	}

	if structured {
		return writeStructured(out, format, outcomeView{
			Level:            level.Index,
			Title:            level.Title,
			Score:            outcome.Score,
			IQSegment:        outcome.IQEstimate,
			Trait:            outcome.PersonalityTrait,
			CriticalThinking: outcome.CriticalThinkingRating,
			Feedback:         outcome.Feedback,
			Model:            d.ledger.LastModel(),
		})
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Score:             %d/100\n", outcome.Score)
	fmt.Fprintf(out, "IQ segment:        %s\n", outcome.IQEstimate)
	fmt.Fprintf(out, "Trait:             %s\n", outcome.PersonalityTrait)
	fmt.Fprintf(out, "Critical thinking: %d/10\n", outcome.CriticalThinkingRating)
	fmt.Fprintf(out, "Feedback:          %s\n\n", outcome.Feedback)

	printUsage(out, d.ledger)
	return nil
}
