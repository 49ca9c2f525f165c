package constants

import "strings"

// Format identifies a supported source document format.
type Format string

const (
	PDF  Format = "PDF"
	JSON Format = "JSON"
)

// Formats holds the allowed values for the source_format column on records.
var Formats = []string{string(PDF), string(JSON)}

// AllowedExtensions holds the file extensions accepted for EMR ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"json": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its Format, or "" when unsupported.
func MapExtToFormat(ext string) Format {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "json":
		return JSON
	default:
		return ""
	}
}
