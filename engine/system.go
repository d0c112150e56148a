package engine

// System is one stage of the per-frame pipeline. Update receives the world
// and the frame delta in seconds; all systems in a frame see the same dt.
type System interface {
	Update(w *World, dt float64)
}
