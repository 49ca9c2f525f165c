package llm

import "strings"

// BuildSystemPrompt composes the system message for the structuring engine.
// The contract is strict: schema-shaped JSON only, explicit nulls for
// unresolved sections, no fabricated clinical values.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a medical records processor. Extract information from the EMR text and return ONLY JSON that matches the provided JSON Schema.",
		"Every top-level field must be present; use null for any section the text does not support.",
		"Never guess or fabricate clinical values. If a value is not stated, the field is null.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Convert all measurements to metric units (weight kg, height cm, temperature Celsius).",
		"Monetary amounts are non-negative decimal strings in USD, e.g. \"120.50\".",
		"Diagnosis codes are ICD-10; procedure codes are CPT; each diagnosis code type is exactly 'primary' or 'secondary'.",
		"Set billing_information.total_estimate to the stated total when present, otherwise to the sum of the procedure estimated costs.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the extracted document text.
func BuildUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("EMR document text:\n\n")
	b.WriteString(text)
	return b.String()
}
