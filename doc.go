// Package argbind binds command-line arguments to a declared schema and runs
// a program entry point with the result.
//
//	var schema = options.Schema{
//		{Name: "help", Type: symbol.OptionalBoolean},
//		{Name: "inputPath", Type: symbol.RequiredPath},
//	}
//
//	func main() {
//		argbind.Run(context.Background(), schema, argbind.Func(
//			func(ctx context.Context, opts options.Values, args ...string) error {
//				fmt.Println(opts.Path("inputPath"), args)
//				return nil
//			}), argbind.Config{})
//	}
//
// Run parses argv, validates it with options.Check and calls the entry point.
// Every failure on the way, whether a bad flag, a schema violation, a
// returned error or a panic, is rendered to the PrintError sink and followed
// by Exit(1). Entry points that finish later return a pending Outcome; Run
// waits for it and applies the same rules to its result.
package argbind
