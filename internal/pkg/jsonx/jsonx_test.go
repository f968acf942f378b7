package jsonx_test

import (
	"testing"

	"lastmile/internal/pkg/jsonx"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	t.Run("strips_json_fence", func(t *testing.T) {
		assert.Equal(t, `["a","b"]`, jsonx.StripFences("```json\n[\"a\",\"b\"]\n```"))
	})

	t.Run("strips_bare_fence", func(t *testing.T) {
		assert.Equal(t, `{"k":1}`, jsonx.StripFences("```\n{\"k\":1}\n```"))
	})

	t.Run("keeps_unfenced_input", func(t *testing.T) {
		assert.Equal(t, `["a"]`, jsonx.StripFences(`  ["a"]  `))
	})
}

func TestDecodeStringList(t *testing.T) {
	t.Run("decodes_plain_array", func(t *testing.T) {
		assert.Equal(t, []string{"damaged", "late"}, jsonx.DecodeStringList(`["damaged","late"]`))
	})

	t.Run("decodes_fenced_array", func(t *testing.T) {
		assert.Equal(t, []string{"damaged"}, jsonx.DecodeStringList("```json\n[\"damaged\"]\n```"))
	})

	t.Run("drops_non_string_elements", func(t *testing.T) {
		assert.Equal(t, []string{"a"}, jsonx.DecodeStringList(`["a", 1, null]`))
	})

	t.Run("non_array_yields_nil", func(t *testing.T) {
		assert.Nil(t, jsonx.DecodeStringList(`{"tags":["a"]}`))
	})

	t.Run("garbage_yields_nil", func(t *testing.T) {
		assert.Nil(t, jsonx.DecodeStringList("I could not produce tags, sorry."))
	})

	t.Run("empty_array_yields_nil", func(t *testing.T) {
		assert.Nil(t, jsonx.DecodeStringList(`[]`))
	})
}
