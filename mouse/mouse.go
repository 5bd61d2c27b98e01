package mouse

// Mover injects relative pointer movement into the host session. The
// worker loop treats a failed move as transient and keeps going.
type Mover interface {
	Move(dx, dy int) error
}
