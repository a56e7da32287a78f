// Package greeting holds the greet command exposed to the front-end.
package greeting

const (
	CommandName = "greet"
	ArgName     = "name"

	prefix = "Hello, "
	suffix = "! Greetings from the bridge!"
)

// Greet substitutes name into the greeting template verbatim.
func Greet(name string) string {
	return prefix + name + suffix
}
