package honeycomb_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

func TestOperationRegistry(t *testing.T) {
	t.Parallel()

	registry := honeycomb.NewOperationRegistry()

	t.Run("lookup by name", func(t *testing.T) {
		t.Parallel()

		op, ok := registry.Get("triggers.create")
		require.True(t, ok)
		assert.Equal(t, "POST", op.Method)
		assert.Contains(t, op.Path, "/1/triggers/")

		_, ok = registry.Get("does.not.exist")
		assert.False(t, ok)
	})

	t.Run("list is sorted and complete", func(t *testing.T) {
		t.Parallel()

		operations := registry.List()
		assert.Len(t, operations, registry.Len())

		names := make([]string, len(operations))
		for i, op := range operations {
			names[i] = op.Name
		}

		assert.True(t, sort.StringsAreSorted(names))
	})

	t.Run("covers every resource family", func(t *testing.T) {
		t.Parallel()

		families := []string{
			"auth.", "datasets.", "columns.", "derived_columns.", "queries.",
			"query_results.", "triggers.", "boards.", "markers.", "slos.",
			"burn_alerts.", "recipients.", "api_keys.", "events.",
		}

		operations := registry.List()

		for _, family := range families {
			found := false

			for _, op := range operations {
				if strings.HasPrefix(op.Name, family) {
					found = true

					break
				}
			}

			assert.True(t, found, "no operations registered for %s", family)
		}
	})

	t.Run("every operation is well formed", func(t *testing.T) {
		t.Parallel()

		for _, op := range registry.List() {
			assert.NotEmpty(t, op.Name)
			assert.NotEmpty(t, op.Method)
			assert.True(t, strings.HasPrefix(op.Path, "/1/") || strings.HasPrefix(op.Path, "/2/"),
				"operation %s has unexpected path %s", op.Name, op.Path)
		}
	})
}
