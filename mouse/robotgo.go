package mouse

import (
	"github.com/go-vgo/robotgo"

	// Blank imports pull in the robotgo C sources for the mouse backend.
	_ "github.com/go-vgo/robotgo/base"
	_ "github.com/go-vgo/robotgo/mouse"
)

// SystemMover performs real pointer movement through robotgo.
//
// Platform caveats: macOS requires Accessibility permission for the
// spawning terminal, and Wayland sessions may restrict synthetic input.
type SystemMover struct{}

func NewSystemMover() *SystemMover {
	return &SystemMover{}
}

func (m *SystemMover) Move(dx, dy int) error {
	robotgo.MoveRelative(dx, dy)
	return nil
}
