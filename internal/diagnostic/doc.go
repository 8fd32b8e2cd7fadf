// Package diagnostic collects every problem found in a schema file, rather
// than stopping at the first one, so authors can fix a file in one pass.
package diagnostic
