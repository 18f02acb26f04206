package kvstore

// LoadStatus distinguishes a clean load of a stored blob from the two
// degraded outcomes. Callers treat Empty and Malformed the same way
// (start from defaults); tests and diagnostics can tell them apart.
type LoadStatus int

const (
	LoadOK LoadStatus = iota
	LoadEmpty
	LoadMalformed
)
