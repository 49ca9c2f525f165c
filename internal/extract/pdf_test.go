package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFromContentStream(t *testing.T) {
	t.Run("Tj operators", func(t *testing.T) {
		stream := []byte("BT\n/F1 12 Tf\n(Patient Name:) Tj\n(John Doe) Tj\nET")
		assert.Equal(t, "Patient Name:John Doe", textFromContentStream(stream))
	})

	t.Run("TJ array operator", func(t *testing.T) {
		stream := []byte("[(Blood) (Pressure) (120/80)] TJ")
		assert.Equal(t, "BloodPressure120/80", textFromContentStream(stream))
	})

	t.Run("positioning becomes whitespace", func(t *testing.T) {
		stream := []byte("(Weight:) Tj\n1 0 0 1 100 700 Td\n(70 kg) Tj")
		assert.Equal(t, "Weight: 70 kg", textFromContentStream(stream))
	})

	t.Run("T* breaks lines", func(t *testing.T) {
		stream := []byte("(line one) Tj\nT*\n(line two) Tj")
		assert.Equal(t, "line one\nline two", textFromContentStream(stream))
	})

	t.Run("no text operators", func(t *testing.T) {
		stream := []byte("q\n1 0 0 1 0 0 cm\n/Im0 Do\nQ")
		assert.Equal(t, "", textFromContentStream(stream))
	})
}

func TestDecodePDFString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"escaped parens", `\(BP\)`, "(BP)"},
		{"newline escape", `a\nb`, "a\nb"},
		{"tab escape", `a\tb`, "a\tb"},
		{"backslash", `a\\b`, `a\b`},
		{"octal escape", `\101\102`, "AB"},
		{"trailing backslash", `ab\`, `ab\`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, decodePDFString([]byte(tc.in)))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "a b c", normalizeText("a   b\t\tc"))
	assert.Equal(t, "line1\nline2", normalizeText("line1\nline2"))
	assert.Equal(t, "", normalizeText("  \t \n  "))
	// non-printable bytes are dropped
	assert.Equal(t, "ab", normalizeText("a\x00\x01b"))
}
