// Package pagination provides the --limit/--offset, --page/--page-size and
// --sort handling shared by listing commands, plus page metadata for
// structured output.
package pagination
