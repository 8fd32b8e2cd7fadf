// Package gen renders typed option structs from a schema file.
//
// For a schema of type T the output declares:
//   - TSchema, the options.Schema to pass to argbind.Config
//   - TOptions, one exported field per option (optional ones as pointers)
//   - NewTOptions, which copies checked options.Values into a TOptions
//
// Generation uses text/template + go/format, like the rest of the
// tooling's codegen.
package gen
