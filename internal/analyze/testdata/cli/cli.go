package cli

import "argbind/options"

type Seconds float64

// Deploy holds the flags of the deploy command.
type Deploy struct {
	// Target environment.
	Target   string
	Replicas *int
	DryRun   *bool `argbind:"plan" desc:"print the plan only"`
	Manifest options.Path
	Timeout  *Seconds // how long to wait
	Labels   []string
	Internal string `argbind:"-"`

	secret string
}

func (d Deploy) Secret() string { return d.secret }

type NotAStruct int
