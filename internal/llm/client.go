package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/entity"
)

// Client turns free text into schema-conformant record sections via a
// Completer. It owns the extraction contract (schema + prompts) and local
// validation; the Completer owns the wire.
type Client struct {
	completer Completer
	logger    *slog.Logger
}

var _ Structurer = (*Client)(nil)

func NewClient(completer Completer, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{completer: completer, logger: logger}
}

// Structure sends text to the structuring engine and returns the validated
// sections plus the raw response JSON. Empty text fails fast with EmptyInput
// before any network call. Transport failures surface as ServiceUnavailable
// (retryable by caller policy); responses that do not match the schema are
// SchemaViolation and permanent for this input.
func (c *Client) Structure(ctx context.Context, text string) (*entity.RecordSections, []byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, common.Ef(common.KindEmptyInput, "no text to structure")
	}

	start := time.Now()
	schema := BuildRecordJSONSchema()
	c.logger.Info("llm.structure.start", "text_len", len(text))

	out, err := c.completer.Complete(ctx, BuildSystemPrompt(), BuildUserPrompt(text), schema)
	if err != nil {
		c.logger.Error("llm.structure.service_error", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, nil, common.E(common.KindServiceUnavailable, "structuring service call failed", err)
	}

	raw := []byte(StripCodeFence(out))
	if err := ValidateJSONAgainstSchema(schema, raw); err != nil {
		c.logger.Error("llm.structure.schema_violation", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, raw, common.E(common.KindSchemaViolation, "response does not match record schema", err)
	}

	var sections entity.RecordSections
	if err := json.Unmarshal(raw, &sections); err != nil {
		c.logger.Error("llm.structure.unmarshal_failed", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, raw, common.E(common.KindSchemaViolation, "unmarshal record sections", err)
	}

	c.logger.Info("llm.structure.ok",
		"has_billing", sections.BillingInformation != nil,
		"medications", len(sections.Medications),
		"allergies", len(sections.Allergies),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &sections, raw, nil
}
