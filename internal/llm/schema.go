package llm

import "github.com/bryankwang/EMR-Processing/constants"

// BuildRecordJSONSchema returns the clinical record extraction contract as a
// JSON-Schema (draft 2020-12 subset) generic map. It is sent to the external
// engine as the structured-output constraint and used locally to validate
// both engine responses and pre-structured JSON uploads.
//
// Every section key is required and nullable: a field the engine cannot
// resolve must be an explicit null, never silently omitted, so downstream
// validation can distinguish "unknown" from "absent".
func BuildRecordJSONSchema() map[string]any {
	props := map[string]any{
		"weight":              nullable(measurementProp(true)),
		"height":              nullable(measurementProp(true)),
		"bmi":                 nullable(measurementProp(false)),
		"medical_history":     nullable(medicalHistoryProp()),
		"family_history":      nullable(familyHistoryProp()),
		"social_history":      nullable(socialHistoryProp()),
		"allergies":           nullable(arrayProp(allergyProp())),
		"medications":         nullable(arrayProp(medicationProp())),
		"vitals":              nullable(vitalsProp()),
		"tests_ordered":       nullable(arrayProp(testOrderProp())),
		"test_results":        nullable(arrayProp(testResultProp())),
		"billing_information": nullable(billingProp()),
		"notes":               nullable(map[string]any{"type": "string"}),
	}

	// Stable order keeps the serialized contract byte-identical across calls.
	required := []string{
		"weight", "height", "bmi",
		"medical_history", "family_history", "social_history",
		"allergies", "medications", "vitals",
		"tests_ordered", "test_results",
		"billing_information", "notes",
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func billingProp() map[string]any {
	return objectProp(map[string]any{
		"diagnosis_codes": arrayProp(objectProp(map[string]any{
			"code":        map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string"},
			"type":        map[string]any{"type": "string", "enum": constants.CodeTypes},
		}, "code", "type")),
		"procedure_codes": arrayProp(objectProp(map[string]any{
			"procedure_code": map[string]any{"type": "string", "minLength": 1},
			"description":    map[string]any{"type": "string"},
			"estimated_cost": decimalProp(),
		}, "procedure_code", "estimated_cost")),
		"total_estimate": decimalProp(),
	}, "diagnosis_codes", "procedure_codes", "total_estimate")
}

func measurementProp(withUnit bool) map[string]any {
	props := map[string]any{
		"value": map[string]any{"type": "number"},
	}
	required := []string{"value"}
	if withUnit {
		props["unit"] = map[string]any{"type": "string", "minLength": 1}
		required = append(required, "unit")
	}
	return objectProp(props, required...)
}

func medicalHistoryProp() map[string]any {
	return objectProp(map[string]any{
		"conditions": arrayProp(objectProp(map[string]any{
			"condition":      map[string]any{"type": "string", "minLength": 1},
			"diagnosis_date": dateProp(),
			"status":         map[string]any{"type": "string"},
		}, "condition")),
		"surgeries": arrayProp(objectProp(map[string]any{
			"procedure": map[string]any{"type": "string", "minLength": 1},
			"date":      dateProp(),
		}, "procedure")),
		"immunizations": arrayProp(objectProp(map[string]any{
			"vaccine": map[string]any{"type": "string", "minLength": 1},
			"date":    dateProp(),
		}, "vaccine")),
	})
}

func familyHistoryProp() map[string]any {
	return objectProp(map[string]any{
		"conditions": arrayProp(objectProp(map[string]any{
			"condition": map[string]any{"type": "string", "minLength": 1},
			"relation":  map[string]any{"type": "string"},
		}, "condition")),
	})
}

func socialHistoryProp() map[string]any {
	return objectProp(map[string]any{
		"smoking_status":   nullable(map[string]any{"type": "string"}),
		"alcohol_use":      nullable(map[string]any{"type": "string"}),
		"exercise":         nullable(map[string]any{"type": "string"}),
		"occupation":       nullable(map[string]any{"type": "string"}),
		"living_situation": nullable(map[string]any{"type": "string"}),
	})
}

func allergyProp() map[string]any {
	return objectProp(map[string]any{
		"allergen": map[string]any{"type": "string", "minLength": 1},
		"reaction": map[string]any{"type": "string"},
		"severity": map[string]any{"type": "string"},
	}, "allergen")
}

func medicationProp() map[string]any {
	return objectProp(map[string]any{
		"name":      map[string]any{"type": "string", "minLength": 1},
		"dosage":    map[string]any{"type": "string"},
		"frequency": map[string]any{"type": "string"},
		"purpose":   map[string]any{"type": "string"},
	}, "name")
}

func vitalsProp() map[string]any {
	return objectProp(map[string]any{
		"blood_pressure":    nullable(map[string]any{"type": "string"}),
		"heart_rate":        nullable(map[string]any{"type": "integer"}),
		"temperature":       nullable(map[string]any{"type": "number"}),
		"respiratory_rate":  nullable(map[string]any{"type": "integer"}),
		"oxygen_saturation": nullable(map[string]any{"type": "integer"}),
	})
}

func testOrderProp() map[string]any {
	return objectProp(map[string]any{
		"test_name":    map[string]any{"type": "string", "minLength": 1},
		"reason":       map[string]any{"type": "string"},
		"date_ordered": dateProp(),
	}, "test_name")
}

func testResultProp() map[string]any {
	return objectProp(map[string]any{
		"test_name":       map[string]any{"type": "string", "minLength": 1},
		"result":          map[string]any{"type": "string"},
		"date":            dateProp(),
		"reference_range": map[string]any{"type": "string"},
	}, "test_name", "result")
}

func objectProp(props map[string]any, required ...string) map[string]any {
	s := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func arrayProp(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d+(\.\d{1,2})?$`, // non-negative USD amounts
	}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}

func nullable(s map[string]any) map[string]any {
	return map[string]any{"anyOf": []any{s, map[string]any{"type": "null"}}}
}
