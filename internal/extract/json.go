package extract

import (
	"encoding/json"
	"os"

	"github.com/bryankwang/EMR-Processing/internal/common"
)

// jsonToText parses the file as JSON and re-serializes it to a canonical
// two-space-indented form. Downstream stages always receive text, never
// structured objects, which keeps the structuring client's input contract
// uniform across formats.
func (e *Extractor) jsonToText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", common.E(common.KindExtractionFailed, "read json", err)
	}
	return CanonicalizeJSON(data)
}

// CanonicalizeJSON re-serializes raw JSON bytes to an indented, key-stable
// text form, or fails with MalformedInput when the bytes do not parse.
func CanonicalizeJSON(data []byte) (string, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return "", common.E(common.KindMalformedInput, "parse json document", err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", common.E(common.KindMalformedInput, "canonicalize json document", err)
	}
	return string(out), nil
}
