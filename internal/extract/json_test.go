package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryankwang/EMR-Processing/internal/common"
)

func TestCanonicalizeJSON(t *testing.T) {
	t.Run("indents and stabilizes keys", func(t *testing.T) {
		out, err := CanonicalizeJSON([]byte(`{"b":2,"a":{"c":[1,2]}}`))
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"a\": {\n    \"c\": [\n      1,\n      2\n    ]\n  },\n  \"b\": 2\n}", out)
	})

	t.Run("idempotent", func(t *testing.T) {
		once, err := CanonicalizeJSON([]byte(`{"z": 1, "a": "x"}`))
		require.NoError(t, err)
		twice, err := CanonicalizeJSON([]byte(once))
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("scalar documents pass through", func(t *testing.T) {
		out, err := CanonicalizeJSON([]byte(`"just a string"`))
		require.NoError(t, err)
		assert.Equal(t, `"just a string"`, out)
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := CanonicalizeJSON([]byte(`{"a": `))
		assert.True(t, common.IsKind(err, common.KindMalformedInput))
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := CanonicalizeJSON(nil)
		assert.True(t, common.IsKind(err, common.KindMalformedInput))
	})
}
