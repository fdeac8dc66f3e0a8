package emit

import (
	"fmt"
	"io"

	"github.com/vk/projectgrid/internal/registry"
	"golang.org/x/mod/modfile"
)

// writeGoWork writes a go.work file that uses every registered directory.
func writeGoWork(w io.Writer, entries []registry.Entry, goVersion string) error {
	if goVersion == "" {
		goVersion = DefaultGoVersion
	}

	wf, err := modfile.ParseWork("go.work", []byte(fmt.Sprintf("go %s\n", goVersion)), nil)
	if err != nil {
		return fmt.Errorf("invalid go version '%s': %w", goVersion, err)
	}
	for _, e := range entries {
		if err := wf.AddUse("./"+e.Directory, ""); err != nil {
			return fmt.Errorf("failed to add '%s' to workspace: %w", e.Directory, err)
		}
	}
	wf.Cleanup()

	_, err = w.Write(modfile.Format(wf.Syntax))
	return err
}
