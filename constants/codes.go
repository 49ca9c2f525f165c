package constants

// CodeType classifies a diagnosis code on the billing block.
type CodeType string

const (
	CodeTypePrimary   CodeType = "primary"
	CodeTypeSecondary CodeType = "secondary"
)

// CodeTypes holds the allowed diagnosis code type values.
var CodeTypes = []string{string(CodeTypePrimary), string(CodeTypeSecondary)}

// IsCodeType reports whether s is a valid diagnosis code type.
func IsCodeType(s string) bool {
	return s == string(CodeTypePrimary) || s == string(CodeTypeSecondary)
}
