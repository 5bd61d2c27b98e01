package power

// Inhibitor keeps the host from sleeping while the worker loop runs.
// Acquisition is best-effort: a failed Acquire is logged by the caller
// and the loop proceeds without it.
type Inhibitor interface {
	// Acquire begins inhibiting system sleep. An error means the platform
	// mechanism is unavailable; callers treat it as non-fatal.
	Acquire() error

	// Release drops the inhibition. Safe to call repeatedly, and safe to
	// call without a successful Acquire.
	Release()
}

// New returns the platform inhibitor; see the build-tagged files.
func New() Inhibitor {
	return newInhibitor()
}
