package llm

import (
	"context"
	"fmt"
	"strings"

	"mealplanner-backend-go/internal/models"
)

const assistantPersona = `You are a friendly cooking assistant for a personal meal planner.
You help with recipe ideas, substitutions, and meal planning questions.
When the user pastes recipe text or a link, offer to extract it into a structured recipe.
Keep answers short and practical.`

// Chat runs one free-text completion over a running message history. The
// model is trusted to follow the embedded persona instruction; there is no
// deterministic parsing guarantee on the reply.
func Chat(ctx context.Context, gen TextGenerator, messages []models.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("chat requires at least one message")
	}

	var b strings.Builder
	b.WriteString(assistantPersona)
	b.WriteString("\n\n")
	for _, m := range messages {
		switch m.Role {
		case "assistant":
			b.WriteString("Assistant: ")
		default:
			b.WriteString("User: ")
		}
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")

	reply, err := gen.GenerateContent(ctx, b.String())
	if err != nil {
		return "", fmt.Errorf("failed to get LLM response: %w", err)
	}
	return strings.TrimSpace(reply), nil
}
