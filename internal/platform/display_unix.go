//go:build (linux || freebsd || openbsd || netbsd) && !android

package platform

// CheckDisplay requires an X11 or Wayland display to be advertised.
func CheckDisplay(getenv Getenv) error {
	if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return ErrNoDisplay
	}
	return nil
}
