// Package render formats failures for the terminal.
//
// Any value can be rendered: errors print as "Error: <message>" followed by
// their stack when they carry one, and anything else is first wrapped in a
// NonError describing the value. When the top stack frame points at a
// readable source file, a short code preview is spliced in after the first
// line.
package render
