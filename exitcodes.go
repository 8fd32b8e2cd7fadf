package argbind

// Exit codes passed to Config.Exit.
const (
	// ExitSuccess is passed when an asynchronous entry point completes.
	// Synchronous success never calls Exit.
	ExitSuccess = 0

	// ExitFailure is passed for every parse, validation or entry point failure.
	ExitFailure = 1
)
