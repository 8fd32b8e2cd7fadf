// Package argv turns raw command-line tokens into draft option values.
//
// Supported forms:
//   - short flags: -x value
//   - long flags in any case style: --input-path value, --inputPath value,
//     --input_path value, --INPUT_PATH value
//   - joined values: --input-path=value
//   - boolean flags: --help, or --help false
//   - "--" ends flag parsing
//
// Short flags are never clustered: "-abc" names the option "abc".
package argv
