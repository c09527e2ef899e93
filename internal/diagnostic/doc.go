// Package diagnostic provides structured generation-time errors and warnings
// for the binding generator.
//
// Key capabilities:
//   - Malformed declaration reports attributed to a unit and member
//   - Per-unit filtering, so one bad unit never poisons its siblings
//   - A single joined error for drivers that only want pass/fail
package diagnostic
