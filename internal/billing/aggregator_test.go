package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/entity"
)

func recordWithBilling(bi *entity.BillingInformation) *entity.Record {
	return &entity.Record{Sections: entity.RecordSections{BillingInformation: bi}}
}

func TestItemize(t *testing.T) {
	t.Run("preserves stored order", func(t *testing.T) {
		rec := recordWithBilling(&entity.BillingInformation{
			ProcedureCodes: []entity.ProcedureCode{
				{ProcedureCode: "99213", Description: "Office visit", EstimatedCost: "120.50"},
				{ProcedureCode: "85025", Description: "CBC", EstimatedCost: "30.00"},
			},
			TotalEstimate: "150.50",
		})

		items := Itemize(rec)
		require.Len(t, items, 2)
		assert.Equal(t, LineItem{Code: "99213", Description: "Office visit", Cost: "120.50"}, items[0])
		assert.Equal(t, LineItem{Code: "85025", Description: "CBC", Cost: "30.00"}, items[1])
	})

	t.Run("absent billing", func(t *testing.T) {
		assert.Empty(t, Itemize(recordWithBilling(nil)))
		assert.Empty(t, Itemize(nil))
	})
}

func TestTotal(t *testing.T) {
	t.Run("returns stored total", func(t *testing.T) {
		rec := recordWithBilling(&entity.BillingInformation{
			ProcedureCodes: []entity.ProcedureCode{
				{ProcedureCode: "99213", EstimatedCost: "120.50"},
			},
			// stored total disagrees with the itemization on purpose
			TotalEstimate: "150.50",
		})
		assert.Equal(t, "150.50", Total(rec))
	})

	t.Run("absent billing yields zero", func(t *testing.T) {
		assert.Equal(t, "0.00", Total(recordWithBilling(nil)))
		assert.Equal(t, "0.00", Total(nil))
	})

	t.Run("normalizes fraction digits", func(t *testing.T) {
		rec := recordWithBilling(&entity.BillingInformation{TotalEstimate: "99.5"})
		assert.Equal(t, "99.50", Total(rec))
	})
}

func TestRecomputeTotal(t *testing.T) {
	rec := recordWithBilling(&entity.BillingInformation{
		ProcedureCodes: []entity.ProcedureCode{
			{ProcedureCode: "99213", EstimatedCost: "120.50"},
			{ProcedureCode: "85025", EstimatedCost: "30.00"},
			{ProcedureCode: "00000", EstimatedCost: "n/a"}, // skipped
		},
		TotalEstimate: "999.99",
	})
	assert.Equal(t, "150.50", RecomputeTotal(rec))
	assert.Equal(t, "0.00", RecomputeTotal(nil))
}

func TestValidate(t *testing.T) {
	t.Run("nil billing is valid", func(t *testing.T) {
		assert.NoError(t, Validate(nil))
	})

	t.Run("valid block", func(t *testing.T) {
		assert.NoError(t, Validate(&entity.BillingInformation{
			DiagnosisCodes: []entity.DiagnosisCode{
				{Code: "I10", Type: "primary"},
				{Code: "E11.9", Type: "secondary"},
			},
			ProcedureCodes: []entity.ProcedureCode{
				{ProcedureCode: "99213", EstimatedCost: "120.50"},
			},
			TotalEstimate: "120.50",
		}))
	})

	t.Run("invalid diagnosis type", func(t *testing.T) {
		err := Validate(&entity.BillingInformation{
			DiagnosisCodes: []entity.DiagnosisCode{{Code: "I10", Type: "tertiary"}},
		})
		assert.True(t, common.IsKind(err, common.KindSchemaViolation))
	})

	t.Run("negative cost", func(t *testing.T) {
		err := Validate(&entity.BillingInformation{
			ProcedureCodes: []entity.ProcedureCode{{ProcedureCode: "99213", EstimatedCost: "-5.00"}},
		})
		assert.True(t, common.IsKind(err, common.KindSchemaViolation))
	})

	t.Run("malformed total", func(t *testing.T) {
		err := Validate(&entity.BillingInformation{TotalEstimate: "12.345"})
		assert.True(t, common.IsKind(err, common.KindSchemaViolation))
	})
}

func TestParseCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{"0.00", 0, false},
		{"120.50", 12050, false},
		{"99.5", 9950, false},
		{"7", 700, false},
		{" 15.25 ", 1525, false},
		{"", 0, true},
		{"-1.00", 0, true},
		{"12.345", 0, true},
		{"abc", 0, true},
		{"1.2c", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "150.50", FormatCents(15050))
	assert.Equal(t, "1.00", FormatCents(100))
}
