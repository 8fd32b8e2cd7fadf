// Package analyze loads a Go struct from source and derives a schema file
// from its fields.
//
// It uses golang.org/x/tools/go/packages with AST and go/types. Field
// types map to type symbols: strings, numbers, booleans and options.Path
// values are required, pointers to them optional. Tags adjust the result:
//
//	Verbose *bool        `argbind:"loud" desc:"print more"`
//	Secret  string       `argbind:"-"`
package analyze
