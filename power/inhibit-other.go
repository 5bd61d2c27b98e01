//go:build !darwin && !linux && !windows

package power

type noopInhibitor struct{}

func newInhibitor() Inhibitor {
	return &noopInhibitor{}
}

func (noopInhibitor) Acquire() error { return nil }
func (noopInhibitor) Release()       {}
