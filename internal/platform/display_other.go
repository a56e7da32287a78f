//go:build !((linux || freebsd || openbsd || netbsd) && !android)

package platform

// CheckDisplay always succeeds; the native window system is part of the OS.
func CheckDisplay(_ Getenv) error {
	return nil
}
