package engine

import (
	"fmt"
	"strings"

	"vendai-assistant-be/pkg/inventory"
)

const (
	replyFirstNameReprompt = "Welcome to VendAI! Before we get started, please tell me your first name."
	replyLastNameReprompt  = "That doesn't look like a name. Please tell me your last name."
	replyAskLocation       = "Thanks! Now please share your location so we can arrange delivery."
	replyLocationReprompt  = "I still need your location to finish signing you up. Please use the share location option."
	replyOrderCancelled    = "No problem, the order has been cancelled. What else would you like?"
	replyConfirmReprompt   = "Please reply with yes to confirm the order or no to cancel it."
	replyApology           = "Sorry, I'm having trouble answering that right now. Please try again in a moment."
	replyNothingFound      = "I couldn't find anything about that. Is there something else I can help with?"
	replyGenericError      = "Sorry, something went wrong on our side. Please try again."
	replyDefault           = "Hi! Say hello to start an order, or ask me anything about VendAI."
)

func askLastName(firstName string) string {
	return fmt.Sprintf("Nice to meet you, %s! What is your last name?", firstName)
}

func catalogGreeting(firstName string, records []inventory.Record) string {
	var sb strings.Builder
	if firstName != "" {
		fmt.Fprintf(&sb, "Hello %s! Here is what we have in stock today:\n\n", firstName)
	} else {
		sb.WriteString("Hello! Here is what we have in stock today:\n\n")
	}
	sb.WriteString(formatProducts(records))
	sb.WriteString("\n\nWhich product would you like to order?")
	return sb.String()
}

func productNotFound(records []inventory.Record) string {
	return "I couldn't find that product. Here is what we have:\n\n" +
		formatProducts(records) +
		"\n\nWhich one would you like?"
}

func matchListReply(scored []inventory.ScoredRecord) string {
	records := make([]inventory.Record, 0, len(scored))
	for _, s := range scored {
		records = append(records, s.Record)
	}
	return "I found a few possible matches:\n\n" +
		formatProducts(records) +
		"\n\nPlease tell me the exact product name."
}

func quantityPrompt(product *inventory.Record) string {
	return fmt.Sprintf("Great choice! How many units of %s would you like?", product.Name)
}

func quantityReprompt(product *inventory.Record) string {
	if product == nil {
		return "Please enter the quantity as a number, for example 2."
	}
	return fmt.Sprintf("Please enter the quantity of %s as a number, for example 2.", product.Name)
}

func orderSummary(product *inventory.Record, quantity int, total float64) string {
	if product.HasKnownPrice() {
		return fmt.Sprintf(
			"You'd like %d x %s for a total of %.2f. Shall I confirm the order? (yes/no)",
			quantity, product.Name, total,
		)
	}
	return fmt.Sprintf(
		"You'd like %d x %s. The price will be confirmed by our team. Shall I confirm the order? (yes/no)",
		quantity, product.Name,
	)
}

func orderConfirmed(order *Order) string {
	return fmt.Sprintf(
		"Your order for %d x %s is confirmed. Thank you for shopping with VendAI!",
		order.Quantity, order.Product.Name,
	)
}

func cartReply(cart []inventory.Record) string {
	if len(cart) == 0 {
		return "Your cart is empty. Tell me a product name to start an order."
	}
	return "Here is what's in your cart so far:\n\n" + formatProducts(cart)
}

func recommendationReply(records []inventory.Record) string {
	if len(records) == 0 {
		return "Order something first and I'll suggest products that go well with it."
	}
	return "Based on your cart, you might also like:\n\n" + formatProducts(records)
}

// formatProducts renders a numbered list, one product per line.
func formatProducts(records []inventory.Record) string {
	var sb strings.Builder
	for i, record := range records {
		if i > 0 {
			sb.WriteByte('\n')
		}
		category := record.Category
		if category == "" {
			category = "Uncategorized"
		}
		fmt.Fprintf(&sb, "%d. %s - %s (%s)", i+1, record.Name, record.RawPrice, category)
	}
	return sb.String()
}
