// Package output re-emits cm diff output as patch lines.
//
// Each token of the captured output is written on its own line behind
// [Prefix]. How the output is cut into tokens is chosen by name with
// [GetSplitter]:
//   - fields: split on any run of whitespace (default)
//   - lines: split on line breaks, keeping records with spaces intact
//
// [WriteFailure] renders the diagnostic shown when cm exits non-zero.
package output
