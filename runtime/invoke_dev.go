//go:build dev

package runtime

// Invoke runs a lifecycle hook in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func Invoke(hook, key string, fn func()) {
	fn()
}
