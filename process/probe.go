package process

// IsAlive reports whether a process with the given pid currently exists.
// Non-positive pids report false. Best-effort: a recycled pid belonging to
// an unrelated process is indistinguishable from the original.
func IsAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	return probe(pid)
}
