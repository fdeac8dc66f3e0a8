package integration_tests

import (
	"testing/fstest"

	"github.com/vk/projectgrid/internal/testutil"
)

// iggyFS is the iggy source tree as an in-memory filesystem.
func iggyFS() fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range testutil.IggyDirs {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}
