// Package casing splits identifiers into words and re-joins them in the
// conventions used for option keys and command-line flags.
//
// Key functions:
//   - Camel: option keys ("inputPath")
//   - Kebab: long flag names ("input-path")
//   - Pascal: generated Go field names ("InputPath")
//   - Fold: case- and separator-insensitive flag matching ("inputpath")
package casing
