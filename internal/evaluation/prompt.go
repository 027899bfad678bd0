package evaluation

import (
	"fmt"
	"strings"

	"github.com/abhisek/iq360/internal/levels"
)

const systemPrompt = `You are the 360IQ Evaluator, a professional psychometrician assessing how a person thinks. Judge the reasoning behind an answer, not only whether it reaches a conventional solution. Creative and well-argued unconventional answers can score highly.`

func buildUserMessage(level levels.Level, answer string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Evaluate the following answer for 360IQ Level %d: %s.\n", level.Index, level.Title))
	b.WriteString(fmt.Sprintf("Category: %s\n\n", level.Category))
	b.WriteString("Puzzle:\n")
	b.WriteString(level.Puzzle)
	b.WriteString("\n\nUser's Answer:\n")
	b.WriteString(answer)

	b.WriteString(`

Instructions:
Provide a professional assessment including:
1. A score from 0 to 100.
2. Detailed feedback on the reasoning.
3. A personality trait the answer reveals.
4. An estimated IQ range for this response, formatted like "115-125".
5. A critical thinking rating from 1 to 10.`)

	return b.String()
}
