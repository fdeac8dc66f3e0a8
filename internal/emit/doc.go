// Package emit re-emits a project registry in other formats: an aligned
// table for humans, the YAML and Kotlin-DSL settings formats understood by
// the loaders, and a Go workspace file. Emitters only write to the given
// io.Writer.
package emit
