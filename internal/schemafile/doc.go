// Package schemafile loads option schemas authored as YAML or HCL files.
//
// YAML:
//
//	package: greet
//	type: Greet
//	options:
//	  - name: name
//	    type: requiredString
//	    description: who to greet
//
// HCL:
//
//	package = "greet"
//	type    = "Greet"
//
//	option "name" {
//	  type        = "requiredString"
//	  description = "who to greet"
//	}
//
// Option order in the file is the schema definition order.
package schemafile
