// Package cmtool runs the Plastic SCM command-line client to collect diffs.
//
// [Command] builds the cm diff invocation with a fixed seven-field record
// template, and [Diff] runs it through a [Runner]. Each output record is a
// single line whose fields are joined by [Separator]; [ParseRecord] splits
// one back into a [Record].
package cmtool
