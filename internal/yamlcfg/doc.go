// Package yamlcfg provides the YAML implementation of the config.Loader
// interface for `settings.yaml` files:
//
//	rootName: iggy-java-client
//	projects:
//	  - include: iggy-java-sdk
//	    directory: java-sdk
//	  - include: iggy-java-example:simple-producer
//	directories:
//	  iggy-java-example:simple-producer: examples/simple-producer
//
// Entries of `projects` are applied in order; the `directories` overrides
// are applied after all of them, in document order.
package yamlcfg
