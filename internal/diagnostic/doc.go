// Package diagnostic provides structured, advisory diagnostics for
// input type conversion.
//
// Diagnostics never alter control flow. Producers hand them to a Reporter,
// which the caller picks:
//   - *Diagnostics collects them for later inspection
//   - LogReporter writes one line per diagnostic to the process log
//   - Discard drops them
package diagnostic
