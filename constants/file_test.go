package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapExtToFormat(".pdf"))
	assert.Equal(t, PDF, MapExtToFormat(".PDF"))
	assert.Equal(t, JSON, MapExtToFormat("json"))
	assert.Equal(t, Format(""), MapExtToFormat(".docx"))
	assert.Equal(t, Format(""), MapExtToFormat(""))
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "json", NormalizeExt("json"))
	assert.Equal(t, "", NormalizeExt("."))
}
