//go:build windows

package system

// InitResourceLimits is a no-op on Windows: there is no RLIMIT_NOFILE
// equivalent to raise.
func InitResourceLimits() {}
