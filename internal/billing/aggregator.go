// Package billing provides pure read-side views over a record's persisted
// billing sub-document. Safe to call repeatedly and concurrently.
package billing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bryankwang/EMR-Processing/constants"
	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/entity"
)

// LineItem is one itemized procedure charge.
type LineItem struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Cost        string `json:"cost"` // decimal string, USD
}

// Itemize returns the record's procedure charges in stored (input) order.
// A record without billing information yields an empty itemization.
func Itemize(rec *entity.Record) []LineItem {
	bi := billingOf(rec)
	if bi == nil {
		return nil
	}
	items := make([]LineItem, 0, len(bi.ProcedureCodes))
	for _, pc := range bi.ProcedureCodes {
		items = append(items, LineItem{
			Code:        pc.ProcedureCode,
			Description: pc.Description,
			Cost:        pc.EstimatedCost,
		})
	}
	return items
}

// Total returns the stored total_estimate as persisted from the structuring
// pass, "0.00" when billing information is absent. It deliberately does NOT
// recompute: callers compare against RecomputeTotal to detect drift.
func Total(rec *entity.Record) string {
	bi := billingOf(rec)
	if bi == nil || bi.TotalEstimate == "" {
		return "0.00"
	}
	cents, err := ParseCents(bi.TotalEstimate)
	if err != nil {
		return bi.TotalEstimate
	}
	return FormatCents(cents)
}

// RecomputeTotal sums the itemized procedure costs. Unparseable entries are
// skipped; absent billing yields "0.00".
func RecomputeTotal(rec *entity.Record) string {
	bi := billingOf(rec)
	if bi == nil {
		return "0.00"
	}
	var sum int64
	for _, pc := range bi.ProcedureCodes {
		cents, err := ParseCents(pc.EstimatedCost)
		if err != nil {
			continue
		}
		sum += cents
	}
	return FormatCents(sum)
}

// Validate checks the invariant-checkable billing fields: diagnosis type
// enum values and non-negative decimal costs. Records failing this must not
// be persisted as COMPLETED.
func Validate(bi *entity.BillingInformation) error {
	if bi == nil {
		return nil
	}
	for i, dc := range bi.DiagnosisCodes {
		if !constants.IsCodeType(dc.Type) {
			return common.Ef(common.KindSchemaViolation,
				"diagnosis_codes[%d]: invalid type %q", i, dc.Type)
		}
	}
	for i, pc := range bi.ProcedureCodes {
		if _, err := ParseCents(pc.EstimatedCost); err != nil {
			return common.E(common.KindSchemaViolation,
				fmt.Sprintf("procedure_codes[%d]: invalid estimated_cost %q", i, pc.EstimatedCost), err)
		}
	}
	if bi.TotalEstimate != "" {
		if _, err := ParseCents(bi.TotalEstimate); err != nil {
			return common.E(common.KindSchemaViolation,
				fmt.Sprintf("invalid total_estimate %q", bi.TotalEstimate), err)
		}
	}
	return nil
}

// ParseCents parses a non-negative decimal string with at most two fraction
// digits into cents. Negative or malformed amounts are rejected.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("amount %q must be a non-negative decimal", s)
	}
	whole, frac, _ := strings.Cut(s, ".")
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, err)
	}
	cents := w * 100
	switch len(frac) {
	case 0:
	case 1:
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("amount %q: %w", s, err)
		}
		cents += f * 10
	case 2:
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("amount %q: %w", s, err)
		}
		cents += f
	default:
		return 0, fmt.Errorf("amount %q has more than two fraction digits", s)
	}
	return cents, nil
}

// FormatCents renders cents as a decimal string with two fraction digits.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func billingOf(rec *entity.Record) *entity.BillingInformation {
	if rec == nil {
		return nil
	}
	return rec.Sections.BillingInformation
}
