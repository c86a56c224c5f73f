// Package cli implements the interactive qrforge shell.
//
// The App type wires the local SQLite store, the account and session
// services, the code generation controller and the notifier together, and
// drives a small read-eval-print loop on standard input. Command handlers
// collect their input interactively and report outcomes through the
// notifier rather than returning text.
package cli
