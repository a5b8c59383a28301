// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI.
//
// An App resolves its input path into schematic files, loads each one, builds
// a schematic.Grid and runs the part-number and gear scanners over it, either
// one after the other or concurrently. Results go to the report package;
// diagnostics go to the app's own slog.Logger.
package app
