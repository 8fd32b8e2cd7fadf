// Package symbol defines the eight option type tags a schema is built from.
//
// Every tag pairs a requiredness with a value kind:
//
//	required × {string, number, boolean, path}
//	optional × {string, number, boolean, path}
//
// Tags are a closed enumeration: the zero value is invalid and no other
// values are ever produced by this package.
package symbol
