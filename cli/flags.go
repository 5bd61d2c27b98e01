package cli

var (
	verbose  bool
	stateDir string

	// for start and run commands
	intervalSpec string
	amplitude    int
	durationSpec string
	patternName  string

	// for start command
	startForce bool

	// for status command
	statusJson bool
)
