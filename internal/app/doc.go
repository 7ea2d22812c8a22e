// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the extraction lifecycle (catalogs, storage
// resolution, report output), decoupled from any specific entrypoint like a
// CLI.
package app
