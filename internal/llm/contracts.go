package llm

import (
	"context"

	"github.com/bryankwang/EMR-Processing/internal/entity"
)

// Completer is the single seam across the trust boundary to the external
// structuring engine: given system instructions, the document text, and a
// JSON Schema contract, it returns schema-shaped text. Vendor request and
// response envelopes must not leak past implementations of this interface.
type Completer interface {
	Complete(ctx context.Context, system, user string, schema map[string]any) (string, error)
}

// Structurer is the interface the pipeline depends on. It returns the parsed
// sections plus the raw JSON the engine produced (retained for debugging,
// never attached to a patient record on failure).
type Structurer interface {
	Structure(ctx context.Context, text string) (*entity.RecordSections, []byte, error)
}
