// Package commands defines the safelens CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keypad          Open the calculator (the disguised entry point)
//   - contact         Set, show or remove the trusted contact
//   - vault           List, play back or delete recorded evidence
//   - record          Capture audio evidence
//   - alert           Send a manual emergency alert
//   - analyze         Classify a message and check it for the trigger phrase
//
// # Implementation
//
// The root command loads <home>/config.yaml, opens the log file and builds the
// dependency graph (stores, backend client, services) before any subcommand
// runs. Logs never go to the terminal.
package commands
