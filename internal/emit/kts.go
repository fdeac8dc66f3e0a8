package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// writeKTS writes a Kotlin-DSL settings file with one include and one
// projectDir statement per entry.
func writeKTS(w io.Writer, src Source) error {
	bw := bufio.NewWriter(w)
	if name := src.RootName(); name != "" {
		fmt.Fprintf(bw, "rootProject.name = %s\n", ktsString(name))
	}
	for _, e := range src.Enumerate() {
		fmt.Fprintf(bw, "\ninclude(%s)\n", ktsString(e.ID))
		fmt.Fprintf(bw, "project(%s).projectDir = file(%s)\n", ktsString(":"+e.ID), ktsString(e.Directory))
	}
	return bw.Flush()
}

var ktsEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)

func ktsString(s string) string {
	return `"` + ktsEscaper.Replace(s) + `"`
}
