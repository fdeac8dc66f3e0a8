package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	r := newIggyRegistry(t)

	testCases := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{name: "direct children", pattern: "examples/*", expected: []string{"iggy-java-example:simple-producer", "iggy-java-example:simple-consumer"}},
		{name: "any depth", pattern: "**/simple-consumer", expected: []string{"iggy-java-example:simple-consumer"}},
		{name: "exact", pattern: "java-sdk", expected: []string{"iggy-java-sdk"}},
		{name: "no match", pattern: "docs/**", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := r.Filter(tc.pattern)
			require.NoError(t, err)

			var ids []string
			for _, e := range entries {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestFilter_BadPattern(t *testing.T) {
	r := newIggyRegistry(t)
	_, err := r.Filter("examples/[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid directory pattern")
}
