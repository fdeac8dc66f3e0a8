// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the configuration-time lifecycle (discover,
// load, register, validate, seal), decoupled from any specific entrypoint
// like a CLI.
package app
