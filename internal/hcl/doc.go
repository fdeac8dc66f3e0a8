// Package hcl provides the HCL implementation of the config.Loader interface.
// It parses `settings.hcl` files, evaluates their expressions and translates
// the top-level `root_name` attribute and the `include` and `project` blocks,
// in source order, into the format-agnostic settings model.
package hcl
