package core

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/sl"
	"context"
	"fmt"
	"strings"
)

const medicalDisclaimer = "\n\nPlease consult a doctor or pharmacist before use. This is general information, not medical advice."

// healthKeywords trigger the medical disclaimer when they show up in a
// model-generated reply. Stems match their inflections ("pregnan" covers
// pregnant/pregnancy).
var healthKeywords = []string{
	"treatment", "medicine", "medication", "dosage", "dose",
	"symptom", "side effect", "pregnan", "interaction", "diagnos",
	"prescription",
}

var fallbackTemplates = map[entity.Intent]string{
	entity.IntentOrderStatus:    "You can check your orders in the Orders section of your account. Share your order id here and I will look it up for you.",
	entity.IntentProductCompare: "I can help you compare products. Tell me which products you would like to compare.",
	entity.IntentGreeting:       "Hello! I'm your pharmacy assistant. I can help you find medicines, check your order status and answer general questions.",
	entity.IntentGeneralInfo:    "I can help you search for medicines and health products, or check the status of your orders. What are you looking for?",
}

// composeReply builds the outgoing text. The model is best effort: a missing
// credential or a failed call both degrade to the per-intent template, and no
// error ever reaches the user.
func (c *Core) composeReply(ctx context.Context, message string, label entity.Intent, products []entity.Product, order *entity.Order) string {
	if c.ass != nil {
		result := c.ass.Ask(ctx, systemPrompt(label, len(products)), userPrompt(message, products, order))
		switch result.State {
		case entity.ModelSuccess:
			return withDisclaimer(result.Text)
		case entity.ModelUnavailable:
			c.log.Debug("model not configured, using template reply")
		case entity.ModelError:
			c.log.With(sl.Err(result.Err)).Warn("model call failed, using template reply")
		}
	}

	return templateReply(label, products)
}

// templateReply is the degraded response: a pure function of intent and
// product count, no network involved.
func templateReply(label entity.Intent, products []entity.Product) string {
	if label == entity.IntentProductSearch {
		if len(products) > 0 {
			return fmt.Sprintf("I found %d matching products. Take a look below.", len(products))
		}
		return "I couldn't find matching products. Could you tell me the medicine name or the symptom you need it for?"
	}

	if text, ok := fallbackTemplates[label]; ok {
		return text
	}
	return fallbackTemplates[entity.IntentGeneralInfo]
}

// withDisclaimer appends the medical disclaimer once when the reply touches
// health topics.
func withDisclaimer(text string) string {
	if strings.Contains(text, medicalDisclaimer) {
		return text
	}
	lower := strings.ToLower(text)
	for _, keyword := range healthKeywords {
		if strings.Contains(lower, keyword) {
			return text + medicalDisclaimer
		}
	}
	return text
}

func systemPrompt(label entity.Intent, productCount int) string {
	return fmt.Sprintf(`You are a friendly pharmacy shopping assistant.
Rules:
- Never diagnose conditions or recommend treatment; tell the user to consult a doctor or pharmacist for medical decisions.
- Point out when a product requires a prescription.
- Keep replies short and conversational.
Detected intent: %s. Matching products available: %d.`, label, productCount)
}

func userPrompt(message string, products []entity.Product, order *entity.Order) string {
	var b strings.Builder
	b.WriteString(message)

	if len(products) > 0 {
		b.WriteString("\n\nMatching products:")
		for _, p := range products {
			b.WriteString(fmt.Sprintf("\n- %s, %.2f", p.Name, p.Price))
			if p.Mrp != nil {
				b.WriteString(fmt.Sprintf(" (MRP %.2f)", *p.Mrp))
			}
			b.WriteString(fmt.Sprintf(", stock %d", p.Stock))
			if p.RequiresPrescription {
				b.WriteString(", prescription required")
			}
		}
	}

	if order != nil {
		b.WriteString(fmt.Sprintf("\n\nOrder %s: status %s, total %.2f, placed %s.",
			order.ID, order.Status, order.TotalAmount, order.CreatedAt.Format("02 Jan 2006")))
	}

	return b.String()
}
