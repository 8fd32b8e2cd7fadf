// Package options holds the schema model and the option checker.
//
// A Schema lists option names with their type tags in definition order.
// DeriveHints turns it into the per-option coercion hints the argv
// tokenizer needs, and Check validates a tokenized Values map against it:
//
//	hints, err := options.DeriveHints(schema)
//	...
//	if err := options.Check(schema, draft.Values); err != nil {
//		return err
//	}
//	name := draft.Values.String("name")
//
// Check never copies or mutates the map it validates; the same Values are
// handed to the program afterwards.
package options
