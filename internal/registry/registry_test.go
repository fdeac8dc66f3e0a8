package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// iggyEntries is the project table of the iggy Java client settings file.
var iggyEntries = []Entry{
	{ID: "iggy-java-sdk", Directory: "java-sdk"},
	{ID: "iggy-java-example", Directory: "examples"},
	{ID: "iggy-java-example:simple-producer", Directory: "examples/simple-producer"},
	{ID: "iggy-java-example:simple-consumer", Directory: "examples/simple-consumer"},
}

func newIggyRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New(nil)
	for _, e := range iggyEntries {
		require.NoError(t, r.Register(e.ID, e.Directory))
	}
	return r
}

func TestRegistry_IggyScenario(t *testing.T) {
	r := newIggyRegistry(t)

	assert.Equal(t, iggyEntries, r.Enumerate())
	assert.Equal(t, 4, r.Len())
	assert.Empty(t, r.Namespaces())

	dir, err := r.Resolve("iggy-java-example:simple-producer")
	require.NoError(t, err)
	assert.Equal(t, "examples/simple-producer", dir)
}

func TestRegistry_DuplicateLeavesRegistryUnchanged(t *testing.T) {
	r := newIggyRegistry(t)

	err := r.Register("iggy-java-sdk", "other-dir")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateIdentifier))

	var dupErr *DuplicateIdentifierError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "iggy-java-sdk", dupErr.ID)
	assert.Equal(t, "java-sdk", dupErr.ExistingDirectory)
	assert.Equal(t, "other-dir", dupErr.Directory)

	assert.Equal(t, iggyEntries, r.Enumerate())
	dir, err := r.Resolve("iggy-java-sdk")
	require.NoError(t, err)
	assert.Equal(t, "java-sdk", dir)
}

func TestRegistry_DuplicateAbsoluteForm(t *testing.T) {
	r := newIggyRegistry(t)

	err := r.Include(":iggy-java-example:simple-consumer")
	assert.ErrorIs(t, err, ErrDuplicateIdentifier)
	assert.Equal(t, 4, r.Len())
}

func TestRegistry_ResolveNotFound(t *testing.T) {
	r := newIggyRegistry(t)

	_, err := r.Resolve("iggy-java-skd")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var nfErr *NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.False(t, nfErr.Namespace)
	assert.Contains(t, nfErr.Suggestions, "iggy-java-sdk")
	assert.Contains(t, err.Error(), "did you mean 'iggy-java-sdk'")

	_, err = r.Resolve("zzzz")
	require.ErrorAs(t, err, &nfErr)
	assert.Empty(t, nfErr.Suggestions)
}

func TestRegistry_ResolveInvalidIdentifier(t *testing.T) {
	r := newIggyRegistry(t)

	_, err := r.Resolve("a::b")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRegistry_Namespaces(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Include("group:sub:leaf"))

	assert.Equal(t, []string{"group", "group:sub"}, r.Namespaces())
	assert.Equal(t, []Entry{{ID: "group:sub:leaf", Directory: "group/sub/leaf", Conventional: true}}, r.Enumerate())

	_, err := r.Resolve("group")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.True(t, nfErr.Namespace)
	assert.Contains(t, err.Error(), "only a namespace")

	// A namespace can be promoted to a real project later.
	require.NoError(t, r.Register("group", "modules"))
	assert.Equal(t, []string{"group:sub"}, r.Namespaces())

	dir, err := r.Resolve("group:sub:leaf")
	require.NoError(t, err)
	assert.Equal(t, "modules/sub/leaf", dir, "children follow the parent's directory")
}

func TestRegistry_ConventionFollowsParentOverride(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Include("iggy-java-example"))
	require.NoError(t, r.Include("iggy-java-example:simple-producer"))
	require.NoError(t, r.Include("iggy-java-example:simple-consumer"))
	require.NoError(t, r.SetDirectory("iggy-java-example:simple-consumer", "consumer"))

	require.NoError(t, r.SetDirectory("iggy-java-example", "examples"))

	assert.Equal(t, []Entry{
		{ID: "iggy-java-example", Directory: "examples"},
		{ID: "iggy-java-example:simple-producer", Directory: "examples/simple-producer", Conventional: true},
		{ID: "iggy-java-example:simple-consumer", Directory: "consumer"},
	}, r.Enumerate())
}

func TestRegistry_SetDirectory(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Include("iggy-java-sdk"))

	require.NoError(t, r.SetDirectory(":iggy-java-sdk", "./java-sdk/"))
	dir, err := r.Resolve("iggy-java-sdk")
	require.NoError(t, err)
	assert.Equal(t, "java-sdk", dir)

	err = r.SetDirectory("iggy-java-sdkk", "java-sdk")
	assert.ErrorIs(t, err, ErrNotFound)

	err = r.SetDirectory("iggy-java-sdk", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestRegistry_CleansDirectories(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Register("p", "examples/./x//y/"))

	dir, err := r.Resolve("p")
	require.NoError(t, err)
	assert.Equal(t, "examples/x/y", dir)
}

func TestRegistry_RejectsDirectoriesOutsideRoot(t *testing.T) {
	testCases := []struct {
		name string
		dir  string
	}{
		{name: "parent", dir: "../elsewhere"},
		{name: "climbs out after cleaning", dir: "examples/../../x"},
		{name: "absolute", dir: "/opt/java-sdk"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New(nil)

			err := r.Register("escape", tc.dir)
			assert.ErrorIs(t, err, ErrInvalidDirectory)
			assert.Contains(t, err.Error(), "must be relative and stay inside the root")
			assert.Equal(t, 0, r.Len())

			require.NoError(t, r.Register("p", "p"))
			assert.ErrorIs(t, r.SetDirectory("p", tc.dir), ErrInvalidDirectory)
			dir, err := r.Resolve("p")
			require.NoError(t, err)
			assert.Equal(t, "p", dir)
		})
	}
}

func TestRegistry_RootDirectoryIsAllowed(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Register("root", "./"))

	dir, err := r.Resolve("root")
	require.NoError(t, err)
	assert.Equal(t, ".", dir)
}

func TestRegistry_InvalidIdentifierIsNotRegistered(t *testing.T) {
	r := New(nil)
	require.Error(t, r.Register("bad id", "dir"))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Seal(t *testing.T) {
	r := newIggyRegistry(t)
	require.NoError(t, r.SetRootName("iggy-java-client"))
	r.Seal()
	assert.True(t, r.Sealed())

	assert.ErrorIs(t, r.Include("late"), ErrSealed)
	assert.ErrorIs(t, r.SetDirectory("iggy-java-sdk", "elsewhere"), ErrSealed)
	assert.ErrorIs(t, r.SetRootName("renamed"), ErrSealed)

	assert.Equal(t, "iggy-java-client", r.RootName())
	assert.Equal(t, iggyEntries, r.Enumerate())
}

func TestRegistry_EnumerateReturnsCopy(t *testing.T) {
	r := newIggyRegistry(t)
	entries := r.Enumerate()
	entries[0].Directory = "mutated"

	dir, err := r.Resolve("iggy-java-sdk")
	require.NoError(t, err)
	assert.Equal(t, "java-sdk", dir)
}
