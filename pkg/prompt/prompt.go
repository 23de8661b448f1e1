package prompt

import (
	"fmt"
	"strings"
)

// SystemPrompt is the receptionist persona sent with every completion call.
const SystemPrompt = `You are an AI-powered online receptionist for VendAI, an e-commerce platform specializing in everyday products. You assist customers via chat who are interested in purchasing items from the following categories: Beauty & Personal Care, Beverages, Breakfast, Detergents, Foodstuff, Gas Cylinders, Grocery, Sauces & Spices.

Instructions:
1. Greet customers warmly and professionally.
2. Identify the customer's desired product category and confirm their choice.
3. Use pricing and product details provided as context during the conversation. If no context is given, ask the customer for more specifics.
4. Present pricing and product information clearly and concisely.
5. If a question exceeds your knowledge, escalate politely instead of guessing.
6. Maintain a friendly, professional tone, adapting slightly to the customer's style.
7. Conclude each interaction by offering further assistance.`

// Grounded composes the user prompt for a knowledge question with retrieved
// context material.
func Grounded(contextText, question string) string {
	return fmt.Sprintf(
		"Use the following context to answer; if unknown, answer 'I don't know.': %s\n\nQuestion: %s",
		contextText, question,
	)
}

// CategoryDigest renders product lines for one category into a plain text
// block suitable for embedding as knowledge content.
func CategoryDigest(category string, lines []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Category: %s\n", category))
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
