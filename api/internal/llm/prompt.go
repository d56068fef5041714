package llm

import (
	"fmt"

	"explain-this/api/internal/simplify"
)

const baseInstruction = `You are ExplainThis, an assistant that rewrites text so it is easier to understand.
Keep the meaning of the original. Do not add facts that are not in the text and do not drop key points.
Answer with the rewritten text only: no preface, no headings, no markdown code fences.`

var levelInstructions = map[simplify.Complexity]string{
	simplify.FiveYearOld: `Audience: a curious five-year-old.
Use very short sentences and everyday words. Replace every technical term with a familiar comparison
(toys, food, animals, family). Two to five sentences are usually enough.`,
	simplify.Teenager: `Audience: a teenager in secondary school.
Use clear, friendly language. Keep important terms but explain each one briefly the first time it appears.
One or two short paragraphs.`,
	simplify.Adult: `Audience: a busy adult without specialist training.
Use plain, precise language. Keep the structure of the argument, remove jargon or define it in a few words,
and prefer concrete examples over abstractions.`,
}

// SystemPrompt returns the instruction sent ahead of the user's text.
func SystemPrompt(level simplify.Complexity) string {
	li, ok := levelInstructions[level]
	if !ok {
		li = levelInstructions[simplify.DefaultComplexity]
	}
	return baseInstruction + "\n\n" + li
}

// UserPrompt wraps the text to rewrite.
func UserPrompt(text string, level simplify.Complexity) string {
	return fmt.Sprintf("Rewrite the following text for the %q level.\n\nTEXT:\n%s", string(level), text)
}
