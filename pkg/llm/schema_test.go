package llm

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Name string `json:"name"`
}

type sample struct {
	Title    string    `json:"title" desc:"the title"`
	Count    int       `json:"count"`
	Score    float64   `json:"score"`
	Done     bool      `json:"done"`
	Maybe    *string   `json:"maybe"`
	Tags     []string  `json:"tags"`
	Nested   inner     `json:"nested"`
	NestedP  *inner    `json:"nested_p"`
	When     time.Time `json:"when"`
	Kind     string    `json:"kind" enum:"a,b,c"`
	ignored  string    //nolint:unused
	Excluded string    `json:"-"`
}

func TestSchemaFor(t *testing.T) {
	schema, err := SchemaFor(reflect.TypeOf(sample{}))
	require.NoError(t, err)

	t.Run("strict object", func(t *testing.T) {
		assert.Equal(t, "object", schema["type"])
		assert.Equal(t, false, schema["additionalProperties"])
	})

	t.Run("every property required including nullable", func(t *testing.T) {
		props := schema["properties"].(map[string]any)
		required := schema["required"].([]string)
		assert.Len(t, required, len(props))
		assert.Contains(t, required, "maybe")
		assert.Contains(t, required, "nested_p")
	})

	t.Run("pointer fields widen to nullable", func(t *testing.T) {
		props := schema["properties"].(map[string]any)
		maybe := props["maybe"].(map[string]any)
		assert.Equal(t, []any{"string", "null"}, maybe["type"])
	})

	t.Run("unexported and excluded fields omitted", func(t *testing.T) {
		props := schema["properties"].(map[string]any)
		assert.NotContains(t, props, "ignored")
		assert.NotContains(t, props, "Excluded")
	})

	t.Run("nested structs inlined, not referenced", func(t *testing.T) {
		props := schema["properties"].(map[string]any)
		nested := props["nested"].(map[string]any)
		assert.Equal(t, "object", nested["type"])
		assert.NotContains(t, nested, "$ref")
		nestedProps := nested["properties"].(map[string]any)
		assert.Contains(t, nestedProps, "name")
	})

	t.Run("time is a date-time string", func(t *testing.T) {
		props := schema["properties"].(map[string]any)
		when := props["when"].(map[string]any)
		assert.Equal(t, "string", when["type"])
		assert.Equal(t, "date-time", when["format"])
	})

	t.Run("enum tags become enum values", func(t *testing.T) {
		props := schema["properties"].(map[string]any)
		kind := props["kind"].(map[string]any)
		assert.Equal(t, []any{"a", "b", "c"}, kind["enum"])
	})

	t.Run("desc tags become descriptions", func(t *testing.T) {
		props := schema["properties"].(map[string]any)
		title := props["title"].(map[string]any)
		assert.Equal(t, "the title", title["description"])
	})
}

type cyclic struct {
	Self *cyclic `json:"self"`
}

func TestSchemaFor_RejectsRecursion(t *testing.T) {
	_, err := SchemaFor(reflect.TypeOf(cyclic{}))
	assert.Error(t, err)
}
