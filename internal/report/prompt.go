package report

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are the 360IQ Evaluator. You have watched a person work through a series of reasoning puzzles and now write their final thinking profile. Be specific, encouraging and honest.`

func buildUserMessage(inputs []Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate a final comprehensive report based on these %d level performances:\n\n", len(inputs)))
	for _, in := range inputs {
		b.WriteString(fmt.Sprintf("Level %d (%s): %s -> Score: %d, Trait: %s\n",
			in.Level, in.IQSegment, in.UserAnswer, in.Score, in.PersonalityTrait))
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Analyze the patterns in thinking styles, IQ segments, and personality traits.
1. Give a final estimated IQ range, formatted like "120-130".
2. Write a personality profile of a few sentences.
3. Give a critical thinking score out of 100.
4. List %d-%d specific growth areas.`, MinGrowthAreas, MaxGrowthAreas))

	return b.String()
}
