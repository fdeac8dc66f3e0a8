package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/projectgrid/internal/config"
)

func pos(line int) config.Position {
	return config.Position{File: "settings.gradle.kts", Line: line}
}

func TestApply_IggySettings(t *testing.T) {
	settings := &config.Settings{Source: "settings.gradle.kts"}
	settings.AddRootName("iggy-java-client", pos(1))
	settings.AddInclude("iggy-java-sdk", pos(3))
	settings.AddSetDirectory(":iggy-java-sdk", "java-sdk", pos(4))
	settings.AddInclude("iggy-java-example", pos(6))
	settings.AddSetDirectory(":iggy-java-example", "examples", pos(7))
	settings.AddInclude("iggy-java-example:simple-producer", pos(9))
	settings.AddSetDirectory(":iggy-java-example:simple-producer", "examples/simple-producer", pos(10))
	settings.AddInclude("iggy-java-example:simple-consumer", pos(12))
	settings.AddSetDirectory(":iggy-java-example:simple-consumer", "examples/simple-consumer", pos(13))

	r := New(nil)
	require.NoError(t, r.Apply(context.Background(), settings))

	assert.Equal(t, "iggy-java-client", r.RootName())
	assert.Equal(t, iggyEntries, r.Enumerate())
}

func TestApply_StopsAtFirstError(t *testing.T) {
	testCases := []struct {
		name       string
		build      func(s *config.Settings)
		errContain string
		target     error
		remaining  int
	}{
		{
			name: "duplicate include",
			build: func(s *config.Settings) {
				s.AddInclude("a", pos(1))
				s.AddInclude("a", pos(2))
				s.AddInclude("b", pos(3))
			},
			errContain: "settings.gradle.kts:2: ",
			target:     ErrDuplicateIdentifier,
			remaining:  1,
		},
		{
			name: "directory for unknown project",
			build: func(s *config.Settings) {
				s.AddInclude("a", pos(1))
				s.AddSetDirectory("b", "dir", pos(5))
			},
			errContain: "settings.gradle.kts:5: ",
			target:     ErrNotFound,
			remaining:  1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := &config.Settings{}
			tc.build(settings)

			r := New(nil)
			err := r.Apply(context.Background(), settings)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.target)
			assert.Contains(t, err.Error(), tc.errContain)
			assert.Equal(t, tc.remaining, r.Len())
		})
	}
}

func TestApply_UnknownStatement(t *testing.T) {
	settings := &config.Settings{Statements: []config.Statement{{Kind: config.StatementKind(99), Pos: pos(1)}}}
	err := New(nil).Apply(context.Background(), settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported statement kind")
}
