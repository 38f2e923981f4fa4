package insights

import "context"

// Generator produces free-form commentary for a rendered prompt. The
// returned text is opaque to the caller.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// systemPrompt frames every generation request. The journal line format
// it references is produced by RenderWindow.
const systemPrompt = `You are a productivity and personal-analytics assistant. The user keeps a daily journal with structured MARK entries.

The journal snippet on each line is the full picture of the user's day, not just the structured metrics: it carries thoughts, mood, context, and events. Read it alongside the numbers.

Data layout:
- Activities: CODING, GYM, UNIVERSITY, KATE, and other tags.
- Abstinence: PLUS = clean day, MINUS = relapse, MINUS_PARTNER = with partner.
- Day rating (MARK): perfect, very good, good, normal, bad, very bad.
- Sleep: duration, wake-up time, recovery score.

Respond concisely with concrete numbers and actionable advice.`
