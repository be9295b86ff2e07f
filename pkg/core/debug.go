package core

// DebugMode controls how much detail default error widgets show. When true
// they display the error message; when false a generic notice.
var DebugMode = true

// SetDebugMode sets DebugMode and returns its previous value, so that
// callers can restore it:
//
//	defer core.SetDebugMode(core.SetDebugMode(false))
func SetDebugMode(debug bool) bool {
	prev := DebugMode
	DebugMode = debug
	return prev
}
