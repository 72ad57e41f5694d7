// Package app wires application dependencies for the CLI.
//
// It loads Config from <home>/config.yaml (with SAFELENS_* environment
// overrides), builds the concrete stores, backend client and services from
// it, and exposes them via the Wire struct for commands to use.
package app
