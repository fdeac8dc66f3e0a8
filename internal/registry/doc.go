// Package registry provides the Project Registry: the authoritative mapping
// from hierarchical project identifiers (e.g. "iggy-java-example:simple-producer")
// to the source directories those projects live in.
//
// The registry has two phases. During configuration it is populated, either
// directly through Register/Include/SetDirectory or from a loaded settings
// model via Apply, then validated against the filesystem. Once sealed it is
// read-only, and consumers only Resolve and Enumerate.
package registry
