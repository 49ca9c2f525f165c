package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConformant(t *testing.T) {
	t.Run("conformant payload", func(t *testing.T) {
		sections, ok := ParseConformant([]byte(validRecordJSON))
		require.True(t, ok)
		require.NotNil(t, sections)
		require.NotNil(t, sections.Weight)
		assert.Equal(t, 70.5, sections.Weight.Value)
		assert.Equal(t, "kg", sections.Weight.Unit)
		require.NotNil(t, sections.BillingInformation)
		assert.Equal(t, "120.50", sections.BillingInformation.TotalEstimate)
		require.NotNil(t, sections.Vitals)
		require.NotNil(t, sections.Vitals.HeartRate)
		assert.Equal(t, 72, *sections.Vitals.HeartRate)
	})

	t.Run("all-null payload", func(t *testing.T) {
		sections, ok := ParseConformant([]byte(allNullRecordJSON))
		require.True(t, ok)
		assert.Nil(t, sections.Weight)
		assert.Nil(t, sections.BillingInformation)
		assert.Nil(t, sections.Notes)
	})

	t.Run("shape-only resemblance is rejected", func(t *testing.T) {
		// has some of our keys but not all of them
		_, ok := ParseConformant([]byte(`{"weight": {"value": 70, "unit": "kg"}, "notes": "x"}`))
		assert.False(t, ok)
	})

	t.Run("arbitrary json is rejected", func(t *testing.T) {
		_, ok := ParseConformant([]byte(`{"patient_name": "John Doe", "visit": "2024-03-01"}`))
		assert.False(t, ok)
	})

	t.Run("malformed bytes are rejected", func(t *testing.T) {
		_, ok := ParseConformant([]byte(`{"weight": `))
		assert.False(t, ok)
	})
}
