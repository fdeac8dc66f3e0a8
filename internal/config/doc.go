// Package config defines the format-agnostic settings model for the
// application, along with the Loader interface for reading settings files
// written in a specific format.
//
// A `config.Settings` is the single input of the registry. Concrete loaders,
// such as for HCL, are provided in separate packages.
package config
