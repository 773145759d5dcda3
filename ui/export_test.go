package ui

// SetExit replaces the process exit hook and returns a function that
// restores it.
func SetExit(f func(code int)) (restore func()) {
	old := exit
	exit = f
	return func() { exit = old }
}
