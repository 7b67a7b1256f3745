// Package diagnostic provides coded, non-fatal findings for the tolerant
// ingestion paths. Messy real-world input (unknown columns, malformed
// extension names, out-of-range scores) produces diagnostics instead of
// hard failures; only structurally unreadable input is an error.
package diagnostic
