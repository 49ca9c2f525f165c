package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRecordJSON exercises every section of the extraction contract.
const validRecordJSON = `{
  "weight": {"value": 70.5, "unit": "kg"},
  "height": {"value": 175, "unit": "cm"},
  "bmi": {"value": 23.0},
  "medical_history": {"conditions": [{"condition": "Hypertension", "diagnosis_date": "2020-01-15", "status": "active"}], "surgeries": [{"procedure": "Appendectomy", "date": "2010-06-02"}], "immunizations": [{"vaccine": "Influenza", "date": "2023-10-12"}]},
  "family_history": {"conditions": [{"condition": "Diabetes", "relation": "father"}]},
  "social_history": {"smoking_status": "never", "alcohol_use": "occasional", "exercise": null, "occupation": "accountant", "living_situation": null},
  "allergies": [{"allergen": "penicillin", "reaction": "rash", "severity": "moderate"}],
  "medications": [{"name": "Lisinopril", "dosage": "10mg", "frequency": "daily", "purpose": "blood pressure"}],
  "vitals": {"blood_pressure": "120/80", "heart_rate": 72, "temperature": 36.8, "respiratory_rate": 16, "oxygen_saturation": 98},
  "tests_ordered": [{"test_name": "CBC", "reason": "routine", "date_ordered": "2024-03-01"}],
  "test_results": [{"test_name": "A1C", "result": "5.6%", "date": "2024-03-05", "reference_range": "4.0-5.6"}],
  "billing_information": {"diagnosis_codes": [{"code": "I10", "description": "Essential hypertension", "type": "primary"}], "procedure_codes": [{"procedure_code": "99213", "description": "Office visit", "estimated_cost": "120.50"}], "total_estimate": "120.50"},
  "notes": "Follow up in 3 months."
}`

// allNullRecordJSON is the minimal valid payload: every section present and
// explicitly null.
const allNullRecordJSON = `{
  "weight": null, "height": null, "bmi": null,
  "medical_history": null, "family_history": null, "social_history": null,
  "allergies": null, "medications": null, "vitals": null,
  "tests_ordered": null, "test_results": null,
  "billing_information": null, "notes": null
}`

func TestRecordSchemaAcceptsValidPayloads(t *testing.T) {
	schema := BuildRecordJSONSchema()
	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(validRecordJSON)))
	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(allNullRecordJSON)))
}

func TestRecordSchemaRejections(t *testing.T) {
	schema := BuildRecordJSONSchema()

	mutate := func(t *testing.T, fn func(m map[string]any)) []byte {
		t.Helper()
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(validRecordJSON), &m))
		fn(m)
		out, err := json.Marshal(m)
		require.NoError(t, err)
		return out
	}

	t.Run("missing section key", func(t *testing.T) {
		data := mutate(t, func(m map[string]any) { delete(m, "vitals") })
		assert.Error(t, ValidateJSONAgainstSchema(schema, data))
	})

	t.Run("unknown top-level key", func(t *testing.T) {
		data := mutate(t, func(m map[string]any) { m["hair_color"] = "brown" })
		assert.Error(t, ValidateJSONAgainstSchema(schema, data))
	})

	t.Run("bad diagnosis type", func(t *testing.T) {
		data := mutate(t, func(m map[string]any) {
			bi := m["billing_information"].(map[string]any)
			bi["diagnosis_codes"].([]any)[0].(map[string]any)["type"] = "tertiary"
		})
		assert.Error(t, ValidateJSONAgainstSchema(schema, data))
	})

	t.Run("negative estimated cost", func(t *testing.T) {
		data := mutate(t, func(m map[string]any) {
			bi := m["billing_information"].(map[string]any)
			bi["procedure_codes"].([]any)[0].(map[string]any)["estimated_cost"] = "-5.00"
		})
		assert.Error(t, ValidateJSONAgainstSchema(schema, data))
	})

	t.Run("cost as number not string", func(t *testing.T) {
		data := mutate(t, func(m map[string]any) {
			bi := m["billing_information"].(map[string]any)
			bi["total_estimate"] = 120.50
		})
		assert.Error(t, ValidateJSONAgainstSchema(schema, data))
	})

	t.Run("non-iso date", func(t *testing.T) {
		data := mutate(t, func(m map[string]any) {
			mh := m["medical_history"].(map[string]any)
			mh["conditions"].([]any)[0].(map[string]any)["diagnosis_date"] = "01/15/2020"
		})
		assert.Error(t, ValidateJSONAgainstSchema(schema, data))
	})

	t.Run("weight without unit", func(t *testing.T) {
		data := mutate(t, func(m map[string]any) {
			m["weight"] = map[string]any{"value": 70.5}
		})
		assert.Error(t, ValidateJSONAgainstSchema(schema, data))
	})
}

func TestRecordSchemaIsDeterministic(t *testing.T) {
	a, err := json.Marshal(BuildRecordJSONSchema())
	require.NoError(t, err)
	b, err := json.Marshal(BuildRecordJSONSchema())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
