package emit

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vk/projectgrid/internal/registry"
)

func writeTable(w io.Writer, entries []registry.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IDENTIFIER\tDIRECTORY")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.ID, e.Directory)
	}
	return tw.Flush()
}
