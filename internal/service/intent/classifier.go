package intent

import (
	"PharmaCS/entity"
	"strings"
)

type rule struct {
	match func(msg string) bool
	label entity.Intent
}

// productVocabulary covers dosage forms, common symptoms, transactional
// verbs and frequent drug names seen in storefront queries.
var productVocabulary = []string{
	"medicine", "tablet", "capsule", "syrup", "cream", "ointment", "drops",
	"injection", "inhaler", "vitamin", "supplement", "antibiotic", "painkiller",
	"paracetamol", "ibuprofen", "aspirin", "cetirizine", "amoxicillin", "insulin",
	"fever", "headache", "cough", "cold", "pain", "allergy", "diabetes",
	"acidity", "infection", "sanitizer", "bandage", "thermometer",
	"buy", "need", "want", "looking for", "searching", "purchase", "price of",
}

// rules are evaluated in priority order; the first match wins.
var rules = []rule{
	{
		match: func(msg string) bool {
			return strings.Contains(msg, "order") &&
				(strings.Contains(msg, "status") || strings.Contains(msg, "track"))
		},
		label: entity.IntentOrderStatus,
	},
	{
		match: func(msg string) bool { return containsAny(msg, "compare", "vs", "difference") },
		label: entity.IntentProductCompare,
	},
	{
		match: func(msg string) bool { return containsAny(msg, productVocabulary...) },
		label: entity.IntentProductSearch,
	},
	{
		match: func(msg string) bool { return containsAny(msg, "hello", "hi", "help") },
		label: entity.IntentGreeting,
	},
}

// Classify labels a raw user message. Matching is case-insensitive substring
// matching; messages hitting no rule fall through to general_info.
func Classify(message string) entity.Intent {
	msg := strings.ToLower(message)
	for _, r := range rules {
		if r.match(msg) {
			return r.label
		}
	}
	return entity.IntentGeneralInfo
}

func containsAny(msg string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(msg, k) {
			return true
		}
	}
	return false
}
